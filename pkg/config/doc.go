/*
Package config manages configuration parsing and validation for fixrc.

	             +--------------+
	             |    Config    |
	             | (rule wiring)|
	             +------+-------+
	                    |
	   +---------+------+------+----------+
	   |         |             |          |
	+--+---+  +--+---+      +--+---+  +---+--+
	| YAML |  | JSON |      | TOML |  | HCL  |
	+------+  +------+      +------+  +------+

🎯 Purpose:
- Loads the rule configuration from disk
- Validates globs and compiles rule patterns once, at load time
- Resolves the effective rule set for each file path
- Supports multiple config formats behind one parser registry

🔄 Flow:
1. Resolve locates the rc file (or the caller names one)
2. A format parser decodes it into Config
3. Validate compiles every pattern and rejects bad globs
4. RulesFor(path) hands operations their per-file rule set

⚡ Key Responsibilities:
- Configuration parsing
- Pattern compilation and glob validation
- Per-file rule scoping (file_rules)
- Format abstraction

🤝 Interfaces:
- Parser: format-specific parsing, selected by CanParse
- Config: validated, compiled rule access

📝 Design Philosophy:
File-specific repairs are data, not code. A file that needs extra rules gets
them through a file_rules entry mapping a glob to more rules, so the rewrite
engine itself never learns about file identities. Patterns fail at load
time, not at apply time: by the point an operation runs, every rule in play
is known to compile.

🔍 Example:

	cfg, err := config.Load(ctx, ".fixrc.yaml")
	if err != nil {
		return err
	}

	set := cfg.RulesFor("src/app/api/admin/reports/route.ts")
	result, err := rewrite.Run(ctx, content, set, rewrite.Options{})
*/
package config
