package cmds

import (
	"fmt"

	"github.com/acorn-io/cmd"
	"github.com/gilrrei/fourcipp"
	"github.com/spf13/cobra"
)

type Convert struct {
	root *FourCIPP

	Output string `usage:"Write the result to this file instead of stdout" short:"o"`
}

func NewConvert(root *FourCIPP) *cobra.Command {
	return cmd.Command(&Convert{root: root}, cobra.Command{
		Use:   "convert FILE",
		Short: "Load a 4C input file, interpret its legacy sections and write it back out",
		Args:  cobra.ExactArgs(1),
	})
}

func (e *Convert) Run(c *cobra.Command, args []string) error {
	cfg, err := e.root.loadConfig()
	if err != nil {
		return err
	}
	metadata, err := cfg.LoadMetadata()
	if err != nil {
		return err
	}

	handler, err := fourcipp.New(fourcipp.Option{
		Metadata: metadata,
		Logger:   e.root.logger(),
	})
	if err != nil {
		return err
	}

	in, err := handler.LoadInput(args[0])
	if err != nil {
		return err
	}
	if err := in.LoadIncludes(); err != nil {
		return err
	}

	if e.Output != "" {
		return in.Dump(e.Output)
	}

	data, err := in.MarshalYAML()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
