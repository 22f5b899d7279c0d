package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOMonth = "2006-1"
	layoutShort    = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day or month, example: --on="2024-2-28", --on="2024-2" or --on="2/28".`)
}

// GetOn resolves the flag against now. A bare month/day is taken in the
// current year.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	if o.OnString == "" {
		return now, nil
	}
	for _, layout := range []string{layoutISO, layoutISOMonth} {
		if t, err := time.ParseInLocation(layout, o.OnString, now.Location()); err == nil {
			return t, nil
		}
	}
	t, err := time.ParseInLocation(layoutShort, o.OnString, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(now.Year(), 0, 0), nil
}
