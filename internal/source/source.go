// Package source fetches the raw form-response rows the lookup index is
// built from. Every implementation returns the sheet as-is, header row
// included; interpreting the columns is the service layer's job.
package source

import (
	"context"
)

// RowSource yields one consistent reading of the dataset. A failed fetch
// must not return partial rows.
type RowSource interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// DefaultSheetName is the worksheet the form responses land on.
const DefaultSheetName = "Ответы на форму (1)"
