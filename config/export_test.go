package config

// ExpandEnv exposes expandEnv for white-box tests.
var ExpandEnv = expandEnv
