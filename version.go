package riveting

// Version is the released version of the module and its binaries.
const Version = "0.1.0"
