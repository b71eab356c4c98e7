package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
)

func testReceipt() *model.ReceiptRequest {
	return &model.ReceiptRequest{
		StoreName:   "CORNER CAFE",
		HeaderLines: []string{"12 High Street"},
		Items: []model.ReceiptItem{
			{Name: "Americano", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("3.50")},
			{Name: "Croissant", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("2.25")},
		},
		FooterLines: []string{"Thank you"},
	}
}

func TestBuildReceiptDocumentTotals(t *testing.T) {
	doc, err := buildReceiptDocument(testReceipt(), 384)
	if err != nil {
		t.Fatalf("buildReceiptDocument: %v", err)
	}

	var totalRow *model.DocumentElement
	for i := range doc.Elements {
		el := &doc.Elements[i]
		if el.Type == "columns" && len(el.Cells) == 2 && el.Cells[0] == "TOTAL" {
			totalRow = el
		}
	}
	if totalRow == nil {
		t.Fatal("no TOTAL row in receipt document")
	}
	if totalRow.Cells[1] != "9.25" {
		t.Errorf("total = %s, want 9.25", totalRow.Cells[1])
	}
}

func TestBuildReceiptDocumentStructure(t *testing.T) {
	req := testReceipt()
	req.BarcodeData = "R-1001"
	req.QRData = "https://example.com/r/1001"
	req.OpenDrawer = true

	doc, err := buildReceiptDocument(req, 576)
	if err != nil {
		t.Fatalf("buildReceiptDocument: %v", err)
	}

	if !doc.Cut {
		t.Error("receipt document should cut the paper")
	}
	if !doc.OpenDrawer {
		t.Error("receipt document should open the drawer")
	}
	if doc.DeviceWidth != 576 {
		t.Errorf("device width = %d, want 576", doc.DeviceWidth)
	}

	first := doc.Elements[0]
	if first.Type != "text" || first.Text != "CORNER CAFE" || !first.Bold {
		t.Errorf("unexpected header element: %+v", first)
	}

	var haveBarcode, haveQR bool
	for _, el := range doc.Elements {
		switch el.Type {
		case "barcode":
			haveBarcode = el.Data == "R-1001"
		case "qrcode":
			haveQR = el.Data == "https://example.com/r/1001"
		}
	}
	if !haveBarcode {
		t.Error("receipt document is missing the barcode element")
	}
	if !haveQR {
		t.Error("receipt document is missing the QR element")
	}
}

func TestBuildReceiptDocumentRenders(t *testing.T) {
	doc, err := buildReceiptDocument(testReceipt(), 384)
	if err != nil {
		t.Fatalf("buildReceiptDocument: %v", err)
	}

	order, err := RenderDocument(doc, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if order.Len() == 0 {
		t.Fatal("rendered receipt is empty")
	}
}

func TestBuildReceiptDocumentNoItems(t *testing.T) {
	req := testReceipt()
	req.Items = nil

	if _, err := buildReceiptDocument(req, 384); err == nil {
		t.Fatal("expected error for receipt without items")
	}
}

func TestBuildReceiptDocumentOddWidthFallsBack(t *testing.T) {
	req := testReceipt()
	req.DeviceWidth = 500

	doc, err := buildReceiptDocument(req, 384)
	if err != nil {
		t.Fatalf("buildReceiptDocument: %v", err)
	}
	if doc.DeviceWidth != 384 {
		t.Errorf("device width = %d, want 384", doc.DeviceWidth)
	}
}
