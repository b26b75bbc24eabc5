package invalid // want `Namespace 'invalid' does not match expected project namespace 'app'`
