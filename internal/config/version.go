package config

// Version is the CLI version reported by "openclaw info --version".
const Version = "0.1.0"
