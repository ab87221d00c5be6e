/*
Package status manages file storage and outcome tracking for restyle.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|  Manager  |           |  Outcome  |
	| (Files)   |           | (Summary) |
	+-----------+           +-----------+

🎯 Purpose:
- Reads listed files into Documents, resolving paths against a base directory
- Writes changed Documents back atomically, keeping their permissions
- Records one Outcome per file and folds them into a Summary

🔄 Flow:
1. ReadDocument loads a file (ErrNotFound when missing, ErrNotText when not UTF-8)
2. The caller rewrites Document.Content
3. SaveDocument writes temp file, chmod, rename
4. Summary.Add counts the resulting Outcome

⚡ Guarantees:
- A file is only written when its Document changed
- A failed write leaves the original file in place
- Nothing besides the listed file and its temp sibling is touched

🔍 Example:

	mgr := status.New(root)
	doc, err := mgr.ReadDocument(ctx, path)
	if errors.Is(err, status.ErrNotFound) {
		summary.Add(status.Outcome{Path: path, Status: status.StatusNotFound})
		return
	}
	doc.Content = strings.ReplaceAll(doc.Content, "bg-white", "bg-slate-800")
	err = mgr.SaveDocument(ctx, doc)
*/
package status
