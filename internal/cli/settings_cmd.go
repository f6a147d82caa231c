package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hbjs97/hbgen/internal/form"
	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *App) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "저장된 빌드 설정을 조회/변경한다",
	}
	cmd.AddCommand(
		a.newSettingsShowCmd(),
		a.newSettingsSetCmd(),
		a.newSettingsResetCmd(),
	)
	return cmd
}

func (a *App) newSettingsShowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "현재 빌드 설정을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			return printSettings(e.out, e.sess.State(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "출력 형식 (text, json, yaml)")
	return cmd
}

// printSettings는 설정 레코드를 format 형식으로 출력한다.
// json은 저장소와 같은 키 이름을 쓴다.
func printSettings(w io.Writer, st form.State, format string) error {
	rec := st.Record()
	switch format {
	case "json":
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("cli.settings: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("cli.settings: %w", err)
		}
		return enc.Close()
	case "text":
		rows := [][2]string{
			{"os", string(st.OS)},
			{"compiler", st.Compiler},
			{"cpu", st.CPU},
			{"shell", st.Shell},
			{"dynamic", fmt.Sprint(st.Dynamic)},
			{"3rdparty", fmt.Sprint(st.ThirdParty)},
			{"debug", fmt.Sprint(st.Debug)},
			{"persist-env", fmt.Sprint(st.PersistEnv)},
			{"ndk", st.NDKPath},
			{"qt", st.QtPath},
			{"workspace", st.WorkspacePath},
		}
		for _, r := range rows {
			fmt.Fprintf(w, "%-12s %s\n", r[0], r[1])
		}
	default:
		return fmt.Errorf("cli.settings: 알 수 없는 출력 형식 %q (text, json, yaml)", format)
	}
	return nil
}

func (a *App) newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "빌드 설정 값 하나를 저장한다",
		Long: "키: " + strings.Join(persistedKeys(), ", ") + `

compiler와 shell은 저장되지 않으므로 generate 플래그로 지정한다.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !slices.Contains(persistedKeys(), key) {
				return fmt.Errorf("cli.settings: 저장할 수 없는 키 %q (선택지: %s)", key, strings.Join(persistedKeys(), ", "))
			}
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			if err := applySetting(e.sess, key, value); err != nil {
				return err
			}
			if key != "os" {
				e.notifier.Notify(ui.LevelSuccess, fmt.Sprintf("%s updated", key))
			}
			return nil
		},
	}
}

func persistedKeys() []string {
	keys := make([]string, 0, len(settingKeys))
	for _, k := range settingKeys {
		if !slices.Contains(transientKeys, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (a *App) newSettingsResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "저장된 빌드 설정을 삭제하고 기본값으로 되돌린다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			if !yes {
				ok, err := a.formRunner(e.theme).RunConfirm("저장된 빌드 설정을 초기화할까요?")
				if err != nil {
					return fmt.Errorf("cli.settings: %w", err)
				}
				if !ok {
					return nil
				}
			}
			if err := e.store.Reset(); err != nil {
				return fmt.Errorf("cli.settings: %w", err)
			}
			e.notifier.Notify(ui.LevelSuccess, "Settings reset to defaults")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "확인 없이 초기화")
	return cmd
}
