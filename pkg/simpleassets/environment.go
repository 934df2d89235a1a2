package simpleassets

// checkEnv resolves the environment label at most once per reset
// cycle: the resolver hook's result when installed, EnvProduction
// otherwise. The local environment forces the domain back to "/".
func (r *Registry) checkEnv() {
	if !r.envResolved {
		if r.envFunc != nil {
			r.env = r.envFunc()
		} else {
			r.env = EnvProduction
		}
		r.envResolved = true
	}
	if r.env == EnvLocal && r.domain != "/" {
		r.domain = "/"
	}
}

// Environment returns the environment label, resolving it on first
// use.
func (r *Registry) Environment() string {
	r.checkEnv()
	return r.env
}
