package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeCommander_ExactMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("hbmk2 --version", "Harbour Make (hbmk2) 3.2.0dev\n", nil)

	out, err := fc.Run(context.Background(), "hbmk2", "--version")
	require.NoError(t, err)
	assert.Equal(t, "Harbour Make (hbmk2) 3.2.0dev\n", string(out))
}

func TestFakeCommander_PrefixMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("hbmk2", "generic", nil)
	fc.Register("hbmk2 --version", "specific", nil)

	out, err := fc.Run(context.Background(), "hbmk2", "--version", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "specific", string(out)) // longest prefix wins
}

func TestFakeCommander_NoMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()

	_, err := fc.Run(context.Background(), "unknown", "command")
	assert.Error(t, err)
}

func TestFakeCommander_DefaultResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: []byte("default")}

	out, err := fc.Run(context.Background(), "any", "command")
	require.NoError(t, err)
	assert.Equal(t, "default", string(out))
}

func TestFakeCommander_ErrorResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("hbmk2 --version", "", fmt.Errorf("executable file not found"))

	_, err := fc.Run(context.Background(), "hbmk2", "--version")
	assert.EqualError(t, err, "executable file not found")
}

func TestFakeCommander_RecordsCalls(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{}

	_, _ = fc.Run(context.Background(), "hbmk2", "--version")
	_, _ = fc.Run(context.Background(), "hbmk2", "--version")
	_, _ = fc.Run(context.Background(), "java", "-version")

	assert.Equal(t, []string{"hbmk2 --version", "hbmk2 --version", "java -version"}, fc.Calls)
	assert.True(t, fc.Called("hbmk2"))
	assert.False(t, fc.Called("hbrun"))
	assert.Equal(t, 2, fc.CallCount("hbmk2"))
}
