// Package sheet generates throwaway .xlsx workbooks filled with random text,
// for manual testing and for benchmarking code that reads spreadsheets.
//
// # Quick start
//
//	g, err := sheet.New(sheet.DefaultConfig(), logger)
//	if err != nil { log.Fatal(err) }
//
//	res, err := g.Generate(ctx)
//	fmt.Println(res.Path) // /abs/path/data/excel/dummy_excel_20250102_030405.xlsx
//
// The workbook holds a single sheet with a header row (Column_1 … Column_N)
// followed by a random number of rows of random lowercase strings. Rows are
// written through excelize's stream writer, so memory stays flat regardless
// of the configured size.
//
// Set [Config.Seed] to reproduce the same cell content across runs.
package sheet
