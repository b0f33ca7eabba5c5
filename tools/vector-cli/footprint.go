// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"unsafe"

	"github.com/Fantom-foundation/Carmen/vector/backend/vector"
	"github.com/urfave/cli/v2"
)

var Footprint = cli.Command{
	Action: footprint,
	Name:   "footprint",
	Usage:  "prints the memory footprint of a vector of the given size",
	Flags: []cli.Flag{
		&numElementsFlag,
		&elementSizeFlag,
	},
}

var elementSizeFlag = cli.IntFlag{
	Name:  "element-size",
	Usage: "the size of a single element in bytes, one of 8, 32 or 256",
	Value: 32,
}

func footprint(context *cli.Context) error {
	numElements := positiveOr(context.Int(numElementsFlag.Name), numElementsFlag.Value)
	res, err := getFootprint(numElements, context.Int(elementSizeFlag.Name))
	if err != nil {
		return err
	}
	fmt.Print(res)
	return nil
}

// getFootprint renders the footprint of a vector holding numElements
// elements of the given size.
func getFootprint(numElements int, elementSize int) (string, error) {
	switch elementSize {
	case 8:
		return footprintOf[[8]byte](numElements)
	case 32:
		return footprintOf[[32]byte](numElements)
	case 256:
		return footprintOf[[256]byte](numElements)
	}
	return "", fmt.Errorf("unsupported element size %d", elementSize)
}

func footprintOf[T any](numElements int) (string, error) {
	v, err := vector.WithSize(vector.Plain[T](), numElements)
	if err != nil {
		return "", err
	}
	defer v.Release()
	var zero T
	fp := v.GetMemoryFootprint()
	return fmt.Sprintf("Vector of %d elements of %d bytes\n%v", numElements, unsafe.Sizeof(zero), fp), nil
}
