package display

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/gentypes/errors"
)

// ShouldOutputJSON reports whether cmd was asked for JSON output via --json
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		return false
	}
	jsonFlag, _ := cmd.Flags().GetBool("json")
	return jsonFlag
}

// OutputJSON marshals and prints JSON using display.MarshalJSON
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	fmt.Println(string(data))
	return nil
}
