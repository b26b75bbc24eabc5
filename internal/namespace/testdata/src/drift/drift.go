package drift // want `Namespace 'drift' does not match expected project namespace 'app'`

const Version = "v0.1.0"
