package domain

// Manufacturer represents one <manufacturer> element of a catalog document
type Manufacturer struct {
	Code        string
	Description string
	Products    []Product
}

// Product represents one <product> element. The TrialOrRevenue, Modality and
// ProductType fields only exist in the newer schema variant; older documents
// leave them empty.
type Product struct {
	Code           string
	Description    string
	Mode           string // read from the mode attribute, not a child element
	Quantity       string
	QuantityUnit   string
	TrialOrRevenue string
	Modality       string
	ProductType    string
	UPCs           []UPC
}

// UPC is the leaf record of the catalog hierarchy; each one becomes exactly
// one output row. Every field is read from an attribute of the <upc> element
// and defaults to the empty string when the attribute is absent.
type UPC struct {
	ID        string
	Power     string
	BaseCurve string
	Diameter  string
	Color     string
	Color2    string
	Cylinder  string
	Axis      string
	Design    string
	Add       string
}

// Row is the flattened join of one manufacturer, one product and one UPC.
// A row always carries all 20 fields; missing source data is an empty
// string, never an absent column.
type Row struct {
	ManufacturerCode string
	ManufacturerDesc string
	ProductCode      string
	ProductDesc      string
	ProductMode      string
	TrialOrRevenue   string
	Modality         string
	ProductType      string
	Quantity         string
	QuantityUnit     string
	UPCID            string
	Power            string
	BaseCurve        string
	Diameter         string
	Color            string
	Color2           string
	Cylinder         string
	Axis             string
	Design           string
	Add              string
}

// Flatten joins a manufacturer, product and UPC into a single row
func Flatten(m *Manufacturer, p *Product, u *UPC) Row {
	return Row{
		ManufacturerCode: m.Code,
		ManufacturerDesc: m.Description,
		ProductCode:      p.Code,
		ProductDesc:      p.Description,
		ProductMode:      p.Mode,
		TrialOrRevenue:   p.TrialOrRevenue,
		Modality:         p.Modality,
		ProductType:      p.ProductType,
		Quantity:         p.Quantity,
		QuantityUnit:     p.QuantityUnit,
		UPCID:            u.ID,
		Power:            u.Power,
		BaseCurve:        u.BaseCurve,
		Diameter:         u.Diameter,
		Color:            u.Color,
		Color2:           u.Color2,
		Cylinder:         u.Cylinder,
		Axis:             u.Axis,
		Design:           u.Design,
		Add:              u.Add,
	}
}

// Columns returns the canonical 20-column header. The order is fixed and
// shared by both schema variants, so old and new catalog files produce
// identically shaped output.
func Columns() []string {
	return []string{
		"Manufacturer_Code", "Manufacturer_Desc",
		"Product_Code", "Product_Desc", "Product_Mode",
		"Trial_or_Revenue", "Modality", "Product_Type",
		"Quantity", "Quantity_Unit",
		"UPC_ID", "Power", "Base_Curve", "Diameter",
		"Color", "Color2", "Cylinder", "Axis", "Design", "Add",
	}
}

// Values returns the row's values in canonical column order
func (r Row) Values() []string {
	return []string{
		r.ManufacturerCode, r.ManufacturerDesc,
		r.ProductCode, r.ProductDesc, r.ProductMode,
		r.TrialOrRevenue, r.Modality, r.ProductType,
		r.Quantity, r.QuantityUnit,
		r.UPCID, r.Power, r.BaseCurve, r.Diameter,
		r.Color, r.Color2, r.Cylinder, r.Axis, r.Design, r.Add,
	}
}

// Table is an ordered sequence of flattened rows with the canonical header.
// Row order is document traversal order: manufacturers, then products within
// a manufacturer, then UPCs within a product, all in document order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable returns an empty table with the canonical header
func NewTable() *Table {
	return &Table{Columns: Columns()}
}

// Append adds one flattened row to the table
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r.Values())
}

// RowCount returns the number of data rows (excluding the header)
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of header columns
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}
