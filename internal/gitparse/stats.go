package gitparse

// ComputeStats aggregates line counts across the given file diffs.
// Binary files and files listed without hunks count toward FilesChanged
// but contribute no insertions or deletions.
func ComputeStats(files []FileDiff) DiffStats {
	stats := DiffStats{FilesChanged: len(files)}

	for _, file := range files {
		for _, hunk := range file.Hunks {
			for _, line := range hunk.Lines {
				switch line.Kind {
				case LineAdded:
					stats.Insertions++
				case LineRemoved:
					stats.Deletions++
				}
			}
		}
	}

	return stats
}
