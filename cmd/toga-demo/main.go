// Package main is an interactive showcase of data-bound widgets on the
// terminal backend. A selection, a switch, and a label all observe the same
// list source, so mutations made through any of them propagate to the rest.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samtupy/toga/pkg/backend"
	"github.com/samtupy/toga/pkg/backend/terminal"
	"github.com/samtupy/toga/pkg/logging"
	"github.com/samtupy/toga/pkg/sources"
	"github.com/samtupy/toga/pkg/style"
	"github.com/samtupy/toga/pkg/widgets"
)

var (
	styleFile string
	title     string
)

func main() {
	root := &cobra.Command{
		Use:           "toga-demo",
		Short:         "Showcase of data-bound terminal widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive demo",
		RunE:  runDemo,
	}
	runCmd.Flags().StringVar(&styleFile, "style", "", "YAML stylesheet to render with")
	runCmd.Flags().StringVar(&title, "title", "toga demo", "window title")
	root.AddCommand(runCmd)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the toolkit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(backend.Version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	sheet := style.DefaultSheet()
	if styleFile != "" {
		data, err := os.ReadFile(styleFile)
		if err != nil {
			return err
		}
		if sheet, err = style.ParseSheet(data); err != nil {
			return err
		}
	}

	factory := terminal.NewFactory(sheet)
	if _, err := backend.Register(factory); err != nil {
		return err
	}
	logging.Info("demo starting", "backend", factory.Name())

	fruits, err := sources.NewListSource([]string{"value"},
		[]string{"apple", "banana", "cherry"})
	if err != nil {
		return err
	}

	if _, err := widgets.NewLabel(widgets.LabelConfig{Text: "Pick a fruit:"}); err != nil {
		return err
	}

	status, err := widgets.NewLabel(widgets.LabelConfig{Text: ""})
	if err != nil {
		return err
	}

	if _, err := widgets.NewSelection(widgets.SelectionConfig{
		Items: fruits,
		OnChange: func(s *widgets.Selection) {
			if row := s.Value(); row != nil {
				status.SetText("Selected: " + sources.Title(row, "value"))
			} else {
				status.SetText("Nothing selected")
			}
		},
	}); err != nil {
		return err
	}

	// The switch mutates the source the selection observes; insert and
	// remove events flow to the backend list without any direct wiring.
	tropical := []string{"mango", "papaya"}
	if _, err := widgets.NewSwitch(widgets.SwitchConfig{
		Label: "Show tropical fruits",
		OnChange: func(sw *widgets.Switch) {
			if sw.Value() {
				for _, name := range tropical {
					fruits.Append(name)
				}
				return
			}
			for _, name := range tropical {
				if row, err := fruits.Find("value", name); err == nil {
					fruits.Remove(row)
				}
			}
		},
	}); err != nil {
		return err
	}

	return terminal.NewApp(title, factory).Run()
}
