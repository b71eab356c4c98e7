package service

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
)

func TestRenderDocumentText(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{Type: "text", Text: "Hello"},
		},
	}

	order, err := RenderDocument(req, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	buf := order.Bytes()
	if !bytes.HasPrefix(buf, []byte{0x1B, 0x40}) {
		t.Errorf("buffer does not start with initialize, got % X", buf[:2])
	}
	if !bytes.Contains(buf, []byte("Hello")) {
		t.Error("buffer does not contain the text payload")
	}
	if order.DeviceWidth() != 384 {
		t.Errorf("device width = %d, want 384", order.DeviceWidth())
	}
}

func TestRenderDocumentUsesRequestWidth(t *testing.T) {
	req := &model.PrintRequest{
		DeviceWidth: 576,
		Elements: []model.DocumentElement{
			{Type: "text", Text: "x"},
		},
	}

	order, err := RenderDocument(req, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if order.DeviceWidth() != 576 {
		t.Errorf("device width = %d, want 576", order.DeviceWidth())
	}
}

func TestRenderDocumentCutAndDrawer(t *testing.T) {
	req := &model.PrintRequest{
		Elements:   []model.DocumentElement{{Type: "feed", Lines: 1}},
		Cut:        true,
		OpenDrawer: true,
	}

	order, err := RenderDocument(req, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	buf := order.Bytes()
	if !bytes.Contains(buf, []byte{0x1D, 0x56, 0x00}) {
		t.Error("buffer does not contain a full cut command")
	}
	if !bytes.Contains(buf, []byte{0x1B, 0x70, 0x00, 0x19, 0x19}) {
		t.Error("buffer does not contain a drawer kick command")
	}
}

func TestRenderDocumentUnknownElement(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{{Type: "hologram"}},
	}

	if _, err := RenderDocument(req, 384); err == nil {
		t.Fatal("expected error for unknown element type")
	}
}

func TestRenderDocumentUnknownAlignment(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{Type: "text", Text: "x", Align: "justified"},
		},
	}

	if _, err := RenderDocument(req, 384); err == nil {
		t.Fatal("expected error for unknown alignment")
	}
}

func TestRenderDocumentColumns(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{
				Type: "columns",
				Columns: []model.ColumnSpec{
					{Width: 192, Align: "left"},
					{Width: 0, Align: "right"},
				},
				Cells: []string{"Item", "9.99"},
			},
		},
	}

	order, err := RenderDocument(req, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	buf := order.Bytes()
	if !bytes.Contains(buf, []byte{0x1B, 0x24}) {
		t.Error("column layout did not emit absolute positioning")
	}
}

func TestRenderDocumentTooManyColumns(t *testing.T) {
	specs := make([]model.ColumnSpec, 7)
	for i := range specs {
		specs[i] = model.ColumnSpec{Width: 48}
	}
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{Type: "columns", Columns: specs, Cells: []string{"a"}},
		},
	}

	if _, err := RenderDocument(req, 384); err == nil {
		t.Fatal("expected error for too many columns")
	}
}

func TestRenderDocumentBarcode(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{Type: "barcode", Symbology: "code128", Data: "ORDER-42", HRI: 2},
		},
	}

	order, err := RenderDocument(req, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	buf := order.Bytes()
	if !bytes.Contains(buf, []byte{0x1D, 0x6B, 73, 8}) {
		t.Error("buffer does not contain the code128 directive")
	}
	if !bytes.Contains(buf, []byte("ORDER-42")) {
		t.Error("buffer does not contain the barcode payload")
	}
}

func TestRenderDocumentBarcodeUnknownSymbology(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{Type: "barcode", Symbology: "maxicode", Data: "x"},
		},
	}

	if _, err := RenderDocument(req, 384); err == nil {
		t.Fatal("expected error for unknown symbology")
	}
}

func TestRenderDocumentQRCode(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{Type: "qrcode", Data: "https://example.com", Module: 6, ECLevel: 1},
		},
	}

	order, err := RenderDocument(req, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	buf := order.Bytes()
	if !bytes.Contains(buf, []byte("https://example.com")) {
		t.Error("buffer does not contain the QR payload")
	}
	if !bytes.Contains(buf, []byte{0x1D, 0x28, 0x6B}) {
		t.Error("buffer does not contain GS ( k commands")
	}
}

func TestRenderDocumentImage(t *testing.T) {
	// 2x2 solid black RGBA.
	pix := make([]byte, 2*2*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{
				Type: "image",
				Image: &model.ImageData{
					Pixels: base64.StdEncoding.EncodeToString(pix),
					Width:  2,
					Height: 2,
					Mode:   "threshold",
				},
			},
		},
	}

	order, err := RenderDocument(req, 384)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	if !bytes.Contains(order.Bytes(), []byte{0x1D, 0x76, 0x30, 0x00}) {
		t.Error("buffer does not contain a raster command")
	}
}

func TestRenderDocumentImageSizeMismatch(t *testing.T) {
	req := &model.PrintRequest{
		Elements: []model.DocumentElement{
			{
				Type: "image",
				Image: &model.ImageData{
					Pixels: base64.StdEncoding.EncodeToString([]byte{0, 0, 0, 0}),
					Width:  2,
					Height: 2,
				},
			},
		},
	}

	_, err := RenderDocument(req, 384)
	if err == nil {
		t.Fatal("expected error for pixel size mismatch")
	}
	if !strings.Contains(err.Error(), "expected") {
		t.Errorf("unexpected error: %v", err)
	}
}
