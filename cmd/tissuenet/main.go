// SPDX-License-Identifier: MIT

// Command tissuenet reconstructs the cell graph of segmented tissue images
// and checks it for structural consistency.
package main

func main() {
	Execute()
}
