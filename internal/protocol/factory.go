// internal/protocol/factory.go
package protocol

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// NewChannel creates a delivery channel from its type and option map
func NewChannel(channelType ChannelType, options map[string]interface{}, logger *zap.Logger) (Channel, error) {
	switch channelType {
	case ChannelTypeTCP:
		return newTCPFromOptions(options, logger)
	case ChannelTypeSerial:
		return newSerialFromOptions(options, logger)
	case ChannelTypeUSB:
		return newUSBFromOptions(options, logger)
	default:
		return nil, fmt.Errorf("unsupported channel type: %s", channelType)
	}
}

func newTCPFromOptions(options map[string]interface{}, logger *zap.Logger) (Channel, error) {
	config := &TCPConfig{
		Port:         9100,
		KeepAlive:    true,
		Timeout:      10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	host, ok := options["host"].(string)
	if !ok || host == "" {
		return nil, fmt.Errorf("tcp host is required")
	}
	config.Host = host

	if port, ok := optionInt(options, "port"); ok {
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid port number: %d", port)
		}
		config.Port = port
	}
	if keepAlive, ok := options["keep_alive"].(bool); ok {
		config.KeepAlive = keepAlive
	}
	if d, ok := optionDuration(options, "timeout"); ok {
		config.Timeout = d
	}
	if d, ok := optionDuration(options, "read_timeout"); ok {
		config.ReadTimeout = d
	}
	if d, ok := optionDuration(options, "write_timeout"); ok {
		config.WriteTimeout = d
	}

	return NewTCPChannel(config, logger), nil
}

func newSerialFromOptions(options map[string]interface{}, logger *zap.Logger) (Channel, error) {
	config := &SerialConfig{
		BaudRate: 9600,
		DataBits: 8,
		StopBits: 1,
		Parity:   "none",
		Timeout:  5 * time.Second,
	}

	port, ok := options["port"].(string)
	if !ok || port == "" {
		return nil, fmt.Errorf("serial port is required")
	}
	config.Port = port

	if baudRate, ok := optionInt(options, "baud_rate"); ok {
		config.BaudRate = baudRate
	}
	if dataBits, ok := optionInt(options, "data_bits"); ok {
		config.DataBits = dataBits
	}
	if stopBits, ok := optionInt(options, "stop_bits"); ok {
		config.StopBits = stopBits
	}
	if parity, ok := options["parity"].(string); ok {
		config.Parity = parity
	}
	if d, ok := optionDuration(options, "timeout"); ok {
		config.Timeout = d
	}

	return NewSerialChannel(config, logger), nil
}

func newUSBFromOptions(options map[string]interface{}, logger *zap.Logger) (Channel, error) {
	config := &USBConfig{
		Endpoint: 1,
		Timeout:  5 * time.Second,
	}

	vendorID, ok := options["vendor_id"].(string)
	if !ok || vendorID == "" {
		return nil, fmt.Errorf("usb vendor_id is required")
	}
	config.VendorID = vendorID

	productID, ok := options["product_id"].(string)
	if !ok || productID == "" {
		return nil, fmt.Errorf("usb product_id is required")
	}
	config.ProductID = productID

	if endpoint, ok := optionInt(options, "endpoint"); ok {
		config.Endpoint = endpoint
	}
	if d, ok := optionDuration(options, "timeout"); ok {
		config.Timeout = d
	}

	return NewUSBChannel(config, logger), nil
}

// optionInt reads an int option that may arrive as float64 from JSON
// or YAML decoding.
func optionInt(options map[string]interface{}, key string) (int, bool) {
	switch v := options[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func optionDuration(options map[string]interface{}, key string) (time.Duration, bool) {
	s, ok := options[key].(string)
	if !ok {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return d, true
}
