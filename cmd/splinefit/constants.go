package main

const (
	// defaultOutputCount is the number of samples of the fitted curve.
	defaultOutputCount = 3000

	// outputPrecision is the number of significant digits in the CSV output.
	outputPrecision = 10
)
