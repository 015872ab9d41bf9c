package version

// Version of the unilog tool.
const Version = "0.2.0"
