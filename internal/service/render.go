// internal/service/render.go
package service

import (
	"encoding/base64"
	"fmt"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/escpos"
	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
)

var symbologies = map[string]escpos.BarcodeType{
	"upc_a":   escpos.BarcodeUPCA,
	"upc_e":   escpos.BarcodeUPCE,
	"ean13":   escpos.BarcodeEAN13,
	"ean8":    escpos.BarcodeEAN8,
	"code39":  escpos.BarcodeCode39,
	"itf":     escpos.BarcodeITF,
	"codabar": escpos.BarcodeCodabar,
	"code93":  escpos.BarcodeCode93,
	"code128": escpos.BarcodeCode128,
}

var alignments = map[string]escpos.Alignment{
	"":       escpos.AlignLeft,
	"left":   escpos.AlignLeft,
	"center": escpos.AlignCenter,
	"right":  escpos.AlignRight,
}

// RenderDocument builds the command stream for a print request
func RenderDocument(req *model.PrintRequest, defaultWidth int) (*escpos.Order, error) {
	width := req.DeviceWidth
	if width == 0 {
		width = defaultWidth
	}

	order := escpos.NewOrder(width)
	order.Initialize()

	for i, element := range req.Elements {
		if err := renderElement(order, &element); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	if req.Cut {
		order.FeedLines(4)
		order.CutPaper(false)
	}
	if req.OpenDrawer {
		order.OpenDrawer(2)
	}

	return order, nil
}

func renderElement(order *escpos.Order, element *model.DocumentElement) error {
	switch element.Type {
	case "text":
		return renderText(order, element)
	case "columns":
		return renderColumns(order, element)
	case "barcode":
		return renderBarcode(order, element)
	case "qrcode":
		order.AppendQRCode(element.Data, element.Module, element.ECLevel)
		return nil
	case "image":
		return renderImage(order, element)
	case "feed":
		order.FeedLines(element.Lines)
		return nil
	default:
		return fmt.Errorf("unknown element type: %s", element.Type)
	}
}

func renderText(order *escpos.Order, element *model.DocumentElement) error {
	align, ok := alignments[element.Align]
	if !ok {
		return fmt.Errorf("unknown alignment: %s", element.Align)
	}

	order.SetAlignment(align)
	order.SetBold(element.Bold)
	order.SetUnderline(element.Underline)
	if element.CharWidth > 0 || element.CharHeight > 0 {
		order.SetCharacterSize(element.CharWidth, element.CharHeight)
	}

	order.AppendText(element.Text)
	order.LineFeed()

	// Restore the baseline style so one element cannot bleed into the
	// next.
	order.SetBold(false)
	order.SetUnderline(0)
	order.SetCharacterSize(1, 1)
	order.SetAlignment(escpos.AlignLeft)
	return nil
}

func renderColumns(order *escpos.Order, element *model.DocumentElement) error {
	if len(element.Columns) == 0 {
		return fmt.Errorf("columns element requires column specs")
	}
	if len(element.Columns) > escpos.MaxColumns {
		return fmt.Errorf("at most %d columns are supported, got %d", escpos.MaxColumns, len(element.Columns))
	}

	entries := make([]uint32, 0, len(element.Columns))
	for _, spec := range element.Columns {
		align, ok := alignments[spec.Align]
		if !ok {
			return fmt.Errorf("unknown alignment: %s", spec.Align)
		}
		if spec.Width < 0 || spec.Width > 0xFFFF {
			return fmt.Errorf("column width out of range: %d", spec.Width)
		}
		entries = append(entries, escpos.Column(uint16(spec.Width), align))
	}

	order.SetColumnWidths(entries...)
	order.PrintInColumns(element.Cells...)
	return nil
}

func renderBarcode(order *escpos.Order, element *model.DocumentElement) error {
	kind, ok := symbologies[element.Symbology]
	if !ok {
		return fmt.Errorf("unknown barcode symbology: %s", element.Symbology)
	}

	height := element.Height
	if height == 0 {
		height = 162
	}
	module := element.Module
	if module == 0 {
		module = 3
	}

	order.SetAlignment(escpos.AlignCenter)
	order.AppendBarcode(kind, element.Data, height, module, element.HRI)
	order.SetAlignment(escpos.AlignLeft)
	return nil
}

func renderImage(order *escpos.Order, element *model.DocumentElement) error {
	if element.Image == nil {
		return fmt.Errorf("image element requires image data")
	}

	pix, err := base64.StdEncoding.DecodeString(element.Image.Pixels)
	if err != nil {
		return fmt.Errorf("invalid image pixels: %w", err)
	}

	expected := element.Image.Width * element.Image.Height * 4
	if len(pix) != expected {
		return fmt.Errorf("image pixel data is %d bytes, expected %d", len(pix), expected)
	}

	mode := escpos.DitherDiffuseMode
	if element.Image.Mode == "threshold" {
		mode = escpos.DitherThresholdMode
	}

	order.AppendImage(pix, element.Image.Width, element.Image.Height, mode)
	return nil
}
