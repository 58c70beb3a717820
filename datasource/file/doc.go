// Package file loads a Matrix from a set of files on disk, matched by a glob.
// Files are parsed in lexical order and their rows concatenated.
package file
