// Package config loads ensemble settings from YAML and maps them onto
// boss options.
//
// Example file:
//
//	seed: 7
//	strategy: contract
//	time_limit: {unit: hour, amount: 2}   # or "90m"
//	max_ensemble_size: 500
//	checkpoint:
//	  dir: /var/lib/boss
//	  cleanup: false
//	report:
//	  train_path: /tmp/train.csv
//	log:
//	  level: info
//
// Unset fields take the boss defaults. Unknown keys are errors.
package config
