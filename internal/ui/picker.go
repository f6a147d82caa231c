package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// ZenityPicker는 ncruces/zenity의 네이티브 폴더 선택 대화상자를 사용하는 Picker다.
type ZenityPicker struct{}

var _ Picker = ZenityPicker{}

// PickDirectory는 폴더 선택 대화상자를 띄운다.
func (ZenityPicker) PickDirectory(ctx context.Context, title, start string) (string, bool, error) {
	if !zenity.IsAvailable() {
		return "", false, ErrPickerUnsupported
	}

	opts := []zenity.Option{
		zenity.Context(ctx),
		zenity.Title(title),
		zenity.Directory(),
	}
	if start != "" {
		opts = append(opts, zenity.Filename(start))
	}

	path, err := zenity.SelectFile(opts...)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ui.PickDirectory: %w", err)
	}
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}
