// Package prompt asks for the values a generation run needs when they were
// not supplied as flags or through a preset, and confirms before an output
// file is overwritten. The default Driver uses survey/v2.
package prompt
