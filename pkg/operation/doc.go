/*
Package operation implements the executable units that run the repair
pipeline over the configured files.

	+-------------+
	|  Operation  |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	|  (Repair)   |
	+------+------+

🎯 Purpose:
- Orchestrates enumerating, repairing, and writing back files
- Keeps one bad file from stopping the rest of the run
- Coordinates between walk (enumeration) and status (storage)

🔄 Flow:
1. Enumerate targets from config paths, command line extras, and globs
2. Fold the rule set over each file's content
3. Delegate write back and backups to the status package
4. Record per-file outcomes for the final summary

⚡ Key Responsibilities:
- Target enumeration and deduplication
- Bounded per-file concurrency
- File level error isolation
- Progress reporting

🤝 Interfaces:
- Operation: One executable unit of work
- Config: Rule sets and target selection
- Status: File storage and outcome tracking

📝 Design Philosophy:
Operations orchestrate; they do not rewrite and they do not touch the
disk. The rewrite package owns the fold, the status package owns the
I/O. The split keeps every operation testable against a plain temp
directory and keeps the fold itself pure. Fix and check share one
skeleton so a check run is always an honest preview of a fix run.

🔍 Example:

	op, err := operation.NewFixOperation(operation.Options{
		Config:    cfg,
		StatusMgr: statusMgr,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(logger, false).Run(ctx, op)
*/
package operation
