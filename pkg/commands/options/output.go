package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

// FormatOptions
type FormatOptions struct {
	Format string
}

func AddFormatArg(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", "json",
		"Output format. One of 'json' or 'yaml'.")
}

func (o *FormatOptions) Validate() error {
	switch strings.ToLower(o.Format) {
	case "json", "yaml", "yml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected json or yaml)", o.Format)
	}
}
