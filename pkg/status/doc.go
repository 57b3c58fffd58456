/*
Package status manages file storage and outcome tracking for fixrc.

	            +-------------+
	            |   Status    |
	            |  (Manager)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Logs   |
	| (Storage) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Manages file system operations for the rewrite pipeline
- Tracks per-file outcomes (fixed, unchanged, missing, error)
- Provides user-friendly status reporting
- Handles atomic writes and backups safely

🔄 Flow:
1. Receives rewritten content from operation
2. Backs up and writes files (atomic temp+rename)
3. Tracks the outcome of every file in the run
4. Reports outcomes and a summary in a user-friendly format

⚡ Key Responsibilities:
- File system operations
- Outcome tracking
- Progress reporting
- Error handling for I/O
- Backup management

🤝 Interfaces:
- FileManager: Handles file operations
- StatusReporter: Reports outcome changes
- FileFormatter: Formats status messages
- UserLogger: Terminal feedback for interactive runs

📝 Design Philosophy:
The status package is responsible for all file system operations and
outcome tracking. The rewrite pipeline itself never touches the disk;
everything it wants persisted flows through the Manager, which ensures:
- Safe atomic writes that keep file permissions
- Backups before destructive rewrites
- Consistent outcome tracking across concurrent workers
- A machine-readable JSON report of the whole run

🔍 Example:

	logger := zerolog.Ctx(ctx)
	mgr := status.New(root, logger)

	// File operations
	if err := mgr.BackupFile(ctx, path); err != nil { ... }
	if err := mgr.WriteFileAtomic(ctx, path, content); err != nil { ... }

	// Outcome tracking
	mgr.TrackFile(ctx, path, status.FileInfo{
		Path:     path,
		Status:   status.StatusFixed,
		Rewrites: 3,
	})

	// Reporting
	summary := mgr.Summarize()
	report, err := mgr.Report(ctx)
*/
package status
