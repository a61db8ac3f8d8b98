package cmds

import (
	"fmt"

	"github.com/acorn-io/cmd"
	"github.com/spf13/cobra"
)

type ShowConfig struct {
	root *FourCIPP
}

func NewShowConfig(root *FourCIPP) *cobra.Command {
	return cmd.Command(&ShowConfig{root: root}, cobra.Command{
		Use:   "show-config",
		Short: "Show the fourcipp config",
		Args:  cobra.NoArgs,
	})
}

func (s *ShowConfig) Run(c *cobra.Command, args []string) error {
	cfg, err := s.root.loadConfig()
	if err != nil {
		return err
	}
	fmt.Println(cfg.Describe())
	fmt.Println("Known profiles:" + cfg.ListProfiles())
	return nil
}

type SwitchProfile struct {
	root *FourCIPP
}

func NewSwitchProfile(root *FourCIPP) *cobra.Command {
	return cmd.Command(&SwitchProfile{root: root}, cobra.Command{
		Use:   "switch-profile PROFILE",
		Short: "Switch the active config profile",
		Args:  cobra.ExactArgs(1),
	})
}

func (s *SwitchProfile) Run(c *cobra.Command, args []string) error {
	cfg, err := s.root.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.SwitchProfile(args[0]); err != nil {
		return err
	}
	fmt.Printf("Changed to config profile %q\n", args[0])
	return nil
}
