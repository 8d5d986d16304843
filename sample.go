package rtfconv

// SampleInput is a short document that exercises every token kind, nested
// toggles and stray text between tokens.
const SampleInput = "{char:H}{char:e}{char:l}{char:l}{char:o} " +
	"{font:bold}{char:W}{char:o}{char:r}{char:l}{char:d}{font:bold} " +
	"{font:italic}{char:!}{font:italic}{par}" +
	"{char:A}{font:bold}{font:italic}{char:B}{char:C}{font:bold}{font:italic}"
