package config

const (
	defaultRoot          = "."
	defaultDocsDir       = "docs"
	defaultComponentsDir = "components"
	defaultRegistryDir   = "components/stickers"
	defaultPagePath      = "registry/index.md"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
)

// DefaultCategories returns the built-in category set. A config file that
// declares its own [[categories]] replaces this list entirely.
func DefaultCategories() []Category {
	return []Category{
		{Code: "TS", Title: "Temperature sensors (DS18B20, PT100, MAX31865, etc.)"},
		{Code: "ENV", Title: "Environmental sensors (BME280/BMP280, SHT4x, TSL2561…)"},
		{Code: "PS", Title: "Power supplies/chargers/regulators (buck, LDO, TP4056…)"},
		{Code: "MC", Title: "Microcontrollers / dev boards (ESP32, RP2040…)"},
		{Code: "RF", Title: "Radios / comms (LoRa, nRF24, ESP-Now modules…)"},
		{Code: "IO", Title: "I/O expanders / ADC / DAC / level shifting"},
		{Code: "AC", Title: "Actuators (fans, motors, servos, relays, MOSFET boards)"},
		{Code: "CN", Title: "Connectors / cables / adapters"},
		{Code: "PA", Title: "Passive Components (resistors, capacitors, potentiometers, trim pots)"},
		{Code: "OT", Title: "Other / misc"},
	}
}

// Default returns a Config populated with repository defaults. Categories
// stay empty here so a config file can declare its own set; Load fills in
// DefaultCategories when none are declared.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:          defaultRoot,
			DocsDir:       defaultDocsDir,
			ComponentsDir: defaultComponentsDir,
			RegistryDir:   defaultRegistryDir,
			PagePath:      defaultPagePath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
