/*
Package operation runs rule sets over a list of files.

	+-------------+
	|  Operation  |
	| (Rewrite)   |
	+------+------+
	       |
	+------+------+      +-------------+
	|    text     |      |   status    |
	| (RuleSet)   |      | (Storage)   |
	+-------------+      +-------------+

🎯 Purpose:
- Walks the configured file list in order
- Applies the path-filtered rules to each document
- Writes changed documents back, or renders a diff in dry-run mode

🔄 Flow:
1. Check the file exists, then read it through status.Manager
2. Filter rules with RuleSet.ForPath
3. Rewrite with text.TextReplacer
4. Save (or diff) and report the outcome via log.Logger

⚡ Failure Model:
A missing file or a failed read/write is an outcome, not an error. Execute
only returns an error when the context is cancelled between files.

🔍 Example:

	op, err := operation.NewRewriteOperation(operation.Options{
		Files: files,
		Rules: rules,
		Store: status.New(root),
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
*/
package operation
