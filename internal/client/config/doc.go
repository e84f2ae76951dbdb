// Package config provides configuration loading for the library CLI client.
//
// Values are resolved in this order, later sources winning:
//  1. Defaults (LoadDefaults).
//  2. A JSON file named by -c or -config.
//  3. Command-line flags -a (server address) and -t (request timeout, seconds).
package config
