// internal/model/document.go
package model

import (
	"github.com/shopspring/decimal"
)

// PrintRequest describes a document to render and deliver
type PrintRequest struct {
	DeviceWidth int               `json:"device_width,omitempty"`
	Elements    []DocumentElement `json:"elements" binding:"required"`
	Cut         bool              `json:"cut,omitempty"`
	OpenDrawer  bool              `json:"open_drawer,omitempty"`
}

// DocumentElement is one renderable item in a print request
type DocumentElement struct {
	Type string `json:"type" binding:"required"`

	// text
	Text       string `json:"text,omitempty"`
	Align      string `json:"align,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Underline  int    `json:"underline,omitempty"`
	CharWidth  int    `json:"char_width,omitempty"`
	CharHeight int    `json:"char_height,omitempty"`

	// columns
	Columns []ColumnSpec `json:"columns,omitempty"`
	Cells   []string     `json:"cells,omitempty"`

	// barcode / qrcode
	Data      string `json:"data,omitempty"`
	Symbology string `json:"symbology,omitempty"`
	Height    int    `json:"height,omitempty"`
	Module    int    `json:"module,omitempty"`
	HRI       int    `json:"hri,omitempty"`
	ECLevel   int    `json:"ec_level,omitempty"`

	// image
	Image *ImageData `json:"image,omitempty"`

	// feed
	Lines int `json:"lines,omitempty"`
}

// ColumnSpec describes one layout slot for a columns element
type ColumnSpec struct {
	Width int    `json:"width"`
	Align string `json:"align,omitempty"`
}

// ImageData carries raster input for an image element. Pixels is
// base64-encoded RGBA, four bytes per pixel, row-major.
type ImageData struct {
	Pixels string `json:"pixels" binding:"required"`
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Mode   string `json:"mode,omitempty"`
}

// ReceiptRequest describes a structured sales receipt
type ReceiptRequest struct {
	DeviceWidth int           `json:"device_width,omitempty"`
	StoreName   string        `json:"store_name" binding:"required"`
	HeaderLines []string      `json:"header_lines,omitempty"`
	Items       []ReceiptItem `json:"items" binding:"required"`
	FooterLines []string      `json:"footer_lines,omitempty"`
	BarcodeData string        `json:"barcode_data,omitempty"`
	QRData      string        `json:"qr_data,omitempty"`
	OpenDrawer  bool          `json:"open_drawer,omitempty"`
}

// ReceiptItem is one line item on a receipt
type ReceiptItem struct {
	Name      string          `json:"name" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// Total returns the line total for the item
func (i *ReceiptItem) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
