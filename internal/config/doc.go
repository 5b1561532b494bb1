// Package config loads stremport configuration from a TOML file.
//
// Configuration is optional: when no file exists the defaults apply and
// every run behaves like the stock conversion. The file only pins defaults
// for the conversion flags ([output]) and the diagnostic logger ([logging]);
// command-line flags always win over file values.
//
// Resolution order: an explicit --config path, then
// ~/.config/stremport/config.toml, then ./stremport.toml.
package config
