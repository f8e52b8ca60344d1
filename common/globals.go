package common

// RowanVersion is the current Rowan version as a string.
const RowanVersion string = "0.1.0"

// ModFileName is the name for Rowan module files.
const ModFileName string = "rowan-mod.toml"
