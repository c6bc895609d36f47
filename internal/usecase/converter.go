package usecase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lenscatalog/xml2xlsx/internal/domain"
)

// grouped formats counts with thousands separators for skip-log reasons
var grouped = message.NewPrinter(language.English)

// ConverterConfig holds the guards applied around the full parse
type ConverterConfig struct {
	// MaxUPCCount rejects a document whose estimated <upc> count exceeds it.
	// Default 1,000,000.
	MaxUPCCount int

	// MaxRows rejects a flattened table larger than the single-sheet XLSX
	// ceiling. Default 1,048,576.
	MaxRows int

	// MaxFileBytes rejects a document file larger than this before the full
	// parse, since a tree that size cannot safely be materialized. 0 disables.
	MaxFileBytes int64
}

// Converter flattens catalog XML documents into tables, one row per <upc>.
// Both schema variants are handled uniformly: the older layout simply leaves
// the three newer product-level fields empty. Every failure mode is caught
// and converted into a rejection error; nothing propagates as a panic.
type Converter struct {
	estimator *SizeEstimator
	skips     domain.SkipLogger
	maxUPCs   int
	maxRows   int
	maxBytes  int64
}

// NewConverter creates a new converter with its collaborators
func NewConverter(estimator *SizeEstimator, skips domain.SkipLogger, config ConverterConfig) *Converter {
	maxUPCs := config.MaxUPCCount
	if maxUPCs == 0 {
		maxUPCs = 1000000
	}

	maxRows := config.MaxRows
	if maxRows == 0 {
		maxRows = 1048576
	}

	return &Converter{
		estimator: estimator,
		skips:     skips,
		maxUPCs:   maxUPCs,
		maxRows:   maxRows,
		maxBytes:  config.MaxFileBytes,
	}
}

// Convert parses the document at path and returns its flattened table.
// Rejections are recorded via the skip logger before the wrapped sentinel
// error is returned; domain.IsRejection distinguishes them from the one
// unrecoverable case, a skip log that cannot be written.
func (c *Converter) Convert(path string) (*domain.Table, error) {
	filename := filepath.Base(path)

	// Quick size pre-check: cheap streaming count before committing to a
	// full parse. A failed estimate is not a rejection.
	if estimate, err := c.estimator.Estimate(path); err == nil && estimate > c.maxUPCs {
		reason := grouped.Sprintf("Too many UPCs (~%d > %d limit)", estimate, c.maxUPCs)
		return nil, c.reject(filename, reason, domain.ErrTooManyUPCs)
	}

	// Refuse to materialize a tree for files beyond the byte limit
	if c.maxBytes > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() > c.maxBytes {
			reason := grouped.Sprintf("File too large (%d bytes > %d limit)", info.Size(), c.maxBytes)
			return nil, c.reject(filename, reason, domain.ErrFileTooLarge)
		}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, c.reject(filename, fmt.Sprintf("XML parse error: %v", err), domain.ErrMalformedXML)
	}
	if doc.Root() == nil {
		return nil, c.reject(filename, "XML parse error: document has no root element", domain.ErrMalformedXML)
	}

	table, err := c.flatten(doc)
	if err != nil {
		return nil, c.reject(filename, fmt.Sprintf("Unexpected error: %v", err), domain.ErrUnexpected)
	}

	if table.RowCount() == 0 {
		// Benign skip: reported on the console by the caller, never logged
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, filename)
	}

	if table.RowCount() > c.maxRows {
		reason := grouped.Sprintf("Too many rows (%d > Excel max %d)", table.RowCount(), c.maxRows)
		return nil, c.reject(filename, reason, domain.ErrTooManyRows)
	}

	return table, nil
}

// flatten walks manufacturer -> product -> upc and emits one row per <upc>
// in document order. Manufacturers are located at any depth; products and
// UPCs are direct children only. A panic during traversal is recovered and
// reported as an error.
func (c *Converter) flatten(doc *etree.Document) (table *domain.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	table = domain.NewTable()
	for _, manufEl := range doc.FindElements("//manufacturer") {
		manuf := domain.Manufacturer{
			Code:        childText(manufEl, "mCode"),
			Description: childText(manufEl, "mDesc"),
		}

		for _, prodEl := range manufEl.SelectElements("product") {
			prod := domain.Product{
				// Common fields (both schema variants)
				Code:         childText(prodEl, "pCode"),
				Description:  childText(prodEl, "pDesc"),
				Mode:         prodEl.SelectAttrValue("mode", ""),
				Quantity:     childText(prodEl, "qty"),
				QuantityUnit: childText(prodEl, "qtyUnit"),

				// Newer-variant fields; empty under the older layout
				TrialOrRevenue: childText(prodEl, "pTrialOrRev"),
				Modality:       childText(prodEl, "pModality"),
				ProductType:    childText(prodEl, "pType"),
			}

			for _, upcEl := range prodEl.SelectElements("upc") {
				upc := domain.UPC{
					ID:        upcEl.SelectAttrValue("id", ""),
					Power:     upcEl.SelectAttrValue("power", ""),
					BaseCurve: upcEl.SelectAttrValue("basecurve", ""),
					Diameter:  upcEl.SelectAttrValue("diameter", ""),
					Color:     upcEl.SelectAttrValue("color", ""),
					Color2:    upcEl.SelectAttrValue("color2", ""),
					Cylinder:  upcEl.SelectAttrValue("cylinder", ""),
					Axis:      upcEl.SelectAttrValue("axis", ""),
					Design:    upcEl.SelectAttrValue("design", ""),
					Add:       upcEl.SelectAttrValue("add", ""),
				}
				table.Append(domain.Flatten(&manuf, &prod, &upc))
			}
		}
	}
	return table, nil
}

// reject durably records the reason, then wraps the sentinel with it.
// A skip log that cannot be written means the environment itself is broken;
// the filesystem error is surfaced instead of the rejection so the batch halts.
func (c *Converter) reject(filename, reason string, sentinel error) error {
	if logErr := c.skips.Log(filename, reason); logErr != nil {
		return fmt.Errorf("skip log write failed: %w", logErr)
	}
	return fmt.Errorf("%w: %s", sentinel, reason)
}

// childText returns the text of the named direct child element, or "" when
// the child is missing
func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
