package internal

// Version is the stevens release, overridden at build time with
// -ldflags "-X codeberg.org/snonux/stevens/internal.Version=...".
var Version = "0.3.0"
