// internal/protocol/channel.go
package protocol

import (
	"context"
	"time"
)

// ChannelType identifies a raw delivery channel to a printer
type ChannelType string

const (
	ChannelTypeTCP    ChannelType = "tcp"
	ChannelTypeSerial ChannelType = "serial"
	ChannelTypeUSB    ChannelType = "usb"
)

// Channel represents a raw byte channel to a printer
type Channel interface {
	Open(ctx context.Context) error
	Close() error
	IsOpen() bool

	Write(ctx context.Context, data []byte) error
	Read(ctx context.Context, maxBytes int) ([]byte, error)

	Type() ChannelType

	Ping(ctx context.Context) error
}

// ChannelStats provides channel-level statistics
type ChannelStats struct {
	BytesWritten   int64     `json:"bytes_written"`
	BytesRead      int64     `json:"bytes_read"`
	OperationCount int64     `json:"operation_count"`
	ErrorCount     int64     `json:"error_count"`
	LastActivity   time.Time `json:"last_activity"`
	IsConnected    bool      `json:"is_connected"`
}

// TCPConfig represents TCP channel configuration
type TCPConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	KeepAlive    bool          `json:"keep_alive"`
	Timeout      time.Duration `json:"timeout"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

// SerialConfig represents serial channel configuration
type SerialConfig struct {
	Port     string        `json:"port"`
	BaudRate int           `json:"baud_rate"`
	DataBits int           `json:"data_bits"`
	StopBits int           `json:"stop_bits"`
	Parity   string        `json:"parity"`
	Timeout  time.Duration `json:"timeout"`
}

// USBConfig represents USB channel configuration
type USBConfig struct {
	VendorID  string        `json:"vendor_id"`
	ProductID string        `json:"product_id"`
	Endpoint  int           `json:"endpoint"`
	Timeout   time.Duration `json:"timeout"`
}

// pingCommand is the DLE EOT transmit-status request printers answer
// without affecting print state.
var pingCommand = []byte{0x10, 0x04, 0x01}
