// Command dummysheet writes a workbook of random text for manual testing and
// benchmarking spreadsheet readers.
package main

import "github.com/hasbyte1/go-tuple-utils/internal/cli"

func main() {
	cli.Execute()
}
