package catalog

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/crawlkit/catalogpress/internal/table"
)

// TransformFile loads one raw CSV and returns it in canonical shape: the
// allow-listed columns actually present, in allow-list order, followed by the
// derived columns. imageCols is the batch-wide ordered list of image fields
// detected from the first input file, applied to the raw row rather than the
// projection since per-image fields are not allow-listed. The second return
// value is the number of malformed rows dropped by the reader.
func TransformFile(path string, imageCols []string) (*table.Table, int, error) {
	raw, skipped, err := table.ReadCSV(path)
	if err != nil {
		return nil, skipped, err
	}

	kept := lo.Filter(KeepColumns, func(col string, _ int) bool { return raw.HasColumn(col) })
	out := table.New(append(kept, DerivedColumns...))

	// Capability check once per file: when the breadcrumb column is absent
	// the category columns still appear, all null.
	hasBreadcrumbs := raw.HasColumn(BreadcrumbColumn)

	for _, rawRow := range raw.Rows {
		row := make(table.Row, len(kept)+len(DerivedColumns))
		for _, col := range kept {
			if v, ok := rawRow[col]; ok {
				row[col] = v
			}
		}

		if images, count := CombineImages(rawRow, imageCols); count > 0 {
			row[AllImagesColumn] = images
			row[ImageCountColumn] = strconv.Itoa(count)
		} else {
			row[ImageCountColumn] = "0"
		}

		if hasBreadcrumbs {
			categories := SplitBreadcrumbs(rawRow[BreadcrumbColumn])
			for i, col := range CategoryColumns {
				if categories[i] != "" {
					row[col] = categories[i]
				}
			}
		}

		out.Rows = append(out.Rows, row)
	}
	return out, skipped, nil
}
