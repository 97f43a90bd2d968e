package sheet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/blake2b"
)

const (
	filePrefix   = "dummy_excel_"
	fileExt      = ".xlsx"
	stampLayout  = "20060102_150405"
	defaultSheet = "Sheet1"
	alphabet     = "abcdefghijklmnopqrstuvwxyz"

	maxNameAttempts = 1000
)

// Result describes a generated workbook.
type Result struct {
	// Path is the absolute path of the written file.
	Path string
	// Rows is the number of data rows, excluding the header.
	Rows    int
	Columns int
	// Size is the file size in bytes.
	Size int64
	// Digest is the hex-encoded BLAKE2b-256 digest of the file.
	Digest string
}

// Generator writes dummy workbooks. It is safe to reuse but not to share
// between goroutines.
type Generator struct {
	cfg Config
	rng *rand.Rand
	log zerolog.Logger
}

// New validates cfg and returns a Generator that logs through logger.
// Pass zerolog.Nop() to silence it.
func New(cfg Config, logger zerolog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed)),
		log: logger.With().Str("component", "sheet").Logger(),
	}, nil
}

// Generate builds a workbook and writes it under the configured directory.
// ctx is checked before every row.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	g.log.Info().Msg("generating dummy workbook")

	dir, err := g.ensureDir()
	if err != nil {
		return Result{}, g.fail(err)
	}
	stamp := g.cfg.Now().Format(stampLayout)

	rows := g.cfg.MinRows + g.rng.IntN(g.cfg.MaxRows-g.cfg.MinRows+1)
	path, err := g.write(ctx, dir, stamp, rows)
	if err != nil {
		return Result{}, g.fail(err)
	}

	size, digest, err := fileDigest(path)
	if err != nil {
		return Result{}, g.fail(err)
	}
	g.log.Info().
		Str("path", path).
		Int("rows", rows).
		Int64("size_mb", size/(1024*1024)).
		Msg("dummy workbook written")

	return Result{
		Path:    path,
		Rows:    rows,
		Columns: g.cfg.Columns,
		Size:    size,
		Digest:  digest,
	}, nil
}

func (g *Generator) fail(err error) error {
	g.log.Error().Err(err).Msg("dummy workbook generation failed")
	return fmt.Errorf("%w: %w", ErrGenerate, err)
}

func (g *Generator) ensureDir() (string, error) {
	dir, err := filepath.Abs(g.cfg.Dir)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		g.log.Info().Str("dir", dir).Msg("created output directory")
	} else if err != nil {
		return "", err
	}
	return dir, nil
}

// write builds the workbook and saves it under dir, returning the path it
// was saved to.
func (g *Generator) write(ctx context.Context, dir, stamp string, rows int) (path string, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if g.cfg.SheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, g.cfg.SheetName); err != nil {
			return "", err
		}
	}
	sw, err := f.NewStreamWriter(g.cfg.SheetName)
	if err != nil {
		return "", err
	}

	header := make([]any, g.cfg.Columns)
	for i := range header {
		header[i] = fmt.Sprintf("Column_%d", i+1)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return "", err
	}

	step := max(rows/5, 1)
	for i := 1; i <= rows; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		row := make([]any, g.cfg.Columns)
		for j := range row {
			row[j] = g.randomText()
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return "", err
		}
		if i%step == 0 {
			g.log.Info().Int("percent", i*100/rows).Msg("generation progress")
		}
	}

	if err := sw.Flush(); err != nil {
		return "", err
	}
	return save(f, dir, stamp)
}

// save writes f to a new file named after stamp. An existing workbook is
// never overwritten: on a name clash a numeric suffix is appended.
func save(f *excelize.File, dir, stamp string) (string, error) {
	for i := 1; i <= maxNameAttempts; i++ {
		name := filePrefix + stamp + fileExt
		if i > 1 {
			name = fmt.Sprintf("%s%s_%d%s", filePrefix, stamp, i, fileExt)
		}
		path := filepath.Join(dir, name)
		out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		_, err = f.WriteTo(out)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s%s%s after %d attempts", filePrefix, stamp, fileExt, maxNameAttempts)
}

func (g *Generator) randomText() string {
	n := g.cfg.MinCellLength + g.rng.IntN(g.cfg.MaxCellLength-g.cfg.MinCellLength+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return string(b)
}

func fileDigest(path string) (int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return 0, "", err
	}
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, "", err
	}
	return n, hex.EncodeToString(h.Sum(nil)), nil
}
