package app

import (
	"fmt"
	"text/tabwriter"
)

// ListOperations writes one line per registered operation: identifier,
// signature and, for operations declared in manifests, their description.
func (a *App) ListOperations() error {
	a.logger.Debug("Listing operations.", "count", a.registry.Len())

	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATION\tSIGNATURE\tDESCRIPTION")
	for _, id := range a.registry.Operations() {
		sig, err := a.registry.Lookup(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, sig, a.model.Descriptions[id])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write operation list: %w", err)
	}
	return nil
}
