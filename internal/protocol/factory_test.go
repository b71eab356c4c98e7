package protocol

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewChannelTCP(t *testing.T) {
	ch, err := NewChannel(ChannelTypeTCP, map[string]interface{}{
		"host": "192.168.1.50",
		// JSON decoding delivers numbers as float64.
		"port":          float64(9101),
		"write_timeout": "5s",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	tcp, ok := ch.(*TCPChannel)
	if !ok {
		t.Fatalf("channel is %T, want *TCPChannel", ch)
	}
	if tcp.config.Host != "192.168.1.50" || tcp.config.Port != 9101 {
		t.Errorf("config = %+v", tcp.config)
	}
	if tcp.config.WriteTimeout != 5*time.Second {
		t.Errorf("write timeout = %v, want 5s", tcp.config.WriteTimeout)
	}
	if ch.Type() != ChannelTypeTCP {
		t.Errorf("type = %s, want tcp", ch.Type())
	}
}

func TestNewChannelTCPDefaults(t *testing.T) {
	ch, err := NewChannel(ChannelTypeTCP, map[string]interface{}{
		"host": "printer.local",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	tcp := ch.(*TCPChannel)
	if tcp.config.Port != 9100 {
		t.Errorf("default port = %d, want 9100", tcp.config.Port)
	}
	if !tcp.config.KeepAlive {
		t.Error("keep alive should default to true")
	}
}

func TestNewChannelTCPRequiresHost(t *testing.T) {
	if _, err := NewChannel(ChannelTypeTCP, map[string]interface{}{}, zap.NewNop()); err == nil {
		t.Fatal("expected error without host")
	}
}

func TestNewChannelTCPRejectsBadPort(t *testing.T) {
	_, err := NewChannel(ChannelTypeTCP, map[string]interface{}{
		"host": "printer.local",
		"port": 70000,
	}, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestNewChannelSerial(t *testing.T) {
	ch, err := NewChannel(ChannelTypeSerial, map[string]interface{}{
		"port":      "/dev/ttyUSB0",
		"baud_rate": 115200,
		"parity":    "even",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	sc := ch.(*SerialChannel)
	if sc.config.Port != "/dev/ttyUSB0" || sc.config.BaudRate != 115200 {
		t.Errorf("config = %+v", sc.config)
	}
	if sc.config.DataBits != 8 || sc.config.StopBits != 1 {
		t.Errorf("defaults not applied: %+v", sc.config)
	}
}

func TestNewChannelSerialRequiresPort(t *testing.T) {
	if _, err := NewChannel(ChannelTypeSerial, map[string]interface{}{}, zap.NewNop()); err == nil {
		t.Fatal("expected error without port")
	}
}

func TestNewChannelUSB(t *testing.T) {
	ch, err := NewChannel(ChannelTypeUSB, map[string]interface{}{
		"vendor_id":  "0x0dd4",
		"product_id": "0x0205",
		"endpoint":   2,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	uc := ch.(*USBChannel)
	if uc.config.VendorID != "0x0dd4" || uc.config.Endpoint != 2 {
		t.Errorf("config = %+v", uc.config)
	}
}

func TestNewChannelUSBRequiresIDs(t *testing.T) {
	_, err := NewChannel(ChannelTypeUSB, map[string]interface{}{
		"vendor_id": "0x0dd4",
	}, zap.NewNop())
	if err == nil {
		t.Fatal("expected error without product_id")
	}
}

func TestNewChannelUnknownType(t *testing.T) {
	if _, err := NewChannel("bluetooth", nil, zap.NewNop()); err == nil {
		t.Fatal("expected error for unknown channel type")
	}
}

func TestParseHexID(t *testing.T) {
	id, err := parseHexID("0x0dd4")
	if err != nil {
		t.Fatalf("parseHexID: %v", err)
	}
	if id != 0x0dd4 {
		t.Errorf("id = %04x, want 0dd4", uint16(id))
	}

	id, err = parseHexID("0205")
	if err != nil {
		t.Fatalf("parseHexID without prefix: %v", err)
	}
	if id != 0x0205 {
		t.Errorf("id = %04x, want 0205", uint16(id))
	}

	if _, err := parseHexID("zz"); err == nil {
		t.Error("parseHexID accepted invalid hex")
	}
}
