// Package config loads and saves dictmark.json, the project configuration
// for the dictmark CLI and preview server. A missing file is not an error;
// defaults apply.
package config
