/*
Package config manages configuration parsing and validation for restyle.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Loads the optional .restyle file (yaml, json or hcl, picked by extension)
- Validates profile names, rules and file entries
- Resolves command line overrides into a runnable Plan

🔄 Flow:
1. Load reads and parses the file through the registered Parser
2. Validate checks values and fills in defaults
3. Resolve merges Overrides, compiles profile rules then custom rules, and
   falls back to the profiles' default files

🔍 Example:

	cfg, err := config.Load(ctx, ".restyle.yaml")
	if err != nil {
		return err
	}
	plan, err := cfg.Resolve(ctx, config.Overrides{DryRun: true})

A minimal yaml file:

	profiles:
	  - remove-dark-mode
	files:
	  - app/dashboard/page.tsx
	rules:
	  - name: input-bg
	    pattern: '(className=")([^"]*\bborder[^"]*)"'
	    replace: '${1}${2} bg-slate-800"'
	    guard: bg-
	    guard_group: 2

📝 Relative roots in a file resolve against that file's directory; a --root
flag resolves against the working directory.
*/
package config
