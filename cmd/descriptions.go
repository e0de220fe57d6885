package cmd

const rootLongDescription = `seek prints the lines of a file, or of every file below a directory,
that match a pattern.

Each search mode is its own command:
  dump    print a file unchanged
  find    literal substring search in one file
  tree    literal substring search in every readable text file below a directory
  invert  lines of one file that do NOT contain a literal pattern
  regex   regular-expression search in one file (\d, \w, classes, ...)
  anchor  regular-expression search using ^ and $ line anchors
  search  regular-expression search, -i for case-insensitive matching

A pattern that starts with "-" must follow "--" so it is not read as a flag:
  seek find -- -v notes.txt

Exit status is 0 when a line was printed or a dump succeeded, 1 when nothing matched and 2 on
error (invalid pattern, unreadable file, bad usage).`

const treeLongDescription = `Recursively search every regular file below a directory for a literal
pattern. Matches are printed as "<path>: <line>".

Directories, symbolic links and special files are ignored. Files that cannot
be read or are not valid UTF-8 text, and subdirectories that cannot be
listed, are skipped without error; use --verbose to see them.`

const regexLongDescription = `Search a file with a regular expression (RE2 syntax). Matching is done
line by line, so ^ and $ always refer to the start and end of a line.`
