package cmds

import (
	"log/slog"
	"os"

	"github.com/acorn-io/cmd"
	"github.com/gilrrei/fourcipp/pkg/config"
	"github.com/spf13/cobra"
)

// FourCIPP is the root command.
type FourCIPP struct {
	ConfigFile string `usage:"Path to the fourcipp config file" short:"c" default:"config.yaml"`
	Verbose    bool   `usage:"Enable debug logging" short:"v"`
}

func New() *cobra.Command {
	root := &FourCIPP{}
	return cmd.Command(root, cobra.Command{
		Use:          "fourcipp",
		Short:        "Read, transform and write 4C input files",
		SilenceUsage: true,
	})
}

func (f *FourCIPP) Customize(c *cobra.Command) {
	c.CompletionOptions.HiddenDefaultCmd = true
	c.AddCommand(NewShowConfig(f))
	c.AddCommand(NewSwitchProfile(f))
	c.AddCommand(NewConvert(f))
}

func (f *FourCIPP) Run(c *cobra.Command, args []string) error {
	return c.Usage()
}

func (f *FourCIPP) loadConfig() (*config.Config, error) {
	return config.Load(f.ConfigFile)
}

func (f *FourCIPP) logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
