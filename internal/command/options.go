package command

import (
	"github.com/spf13/cobra"
)

func AnnotateCommand(cmd *cobra.Command, key, value string) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}

	cmd.Annotations[key] = value
}

const keepItemsAnnotation = "keep_items"

// KeepItems marks cmd so that its live items stay on screen, frozen in their
// final state, once it returns.
func KeepItems(cmd *cobra.Command) {
	AnnotateCommand(cmd, keepItemsAnnotation, "1")
}

func keepsItems(cmd *cobra.Command) bool {
	_, ok := cmd.Annotations[keepItemsAnnotation]
	return ok
}
