// Command qufixbench runs a named fixed-point kernel over generated
// fixtures and prints the resulting real-number view, for eyeballing
// quantization behavior at a given format without writing a test.
//
// Usage:
//
//	qufixbench gemul  --size 4 --int-bits 8 --frac-bits 8 --seed 42
//	qufixbench gemv   --size 6
//	qufixbench potrf  --size 3
//	qufixbench reduce --size 16 --full-prec
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/linalg"
	"github.com/qufix/qufix/tensor"
)

var (
	flagSeed     uint64
	flagSize     int
	flagIntBits  int
	flagFracBits int
	flagFullPrec bool
)

func main() {
	root := &cobra.Command{
		Use:           "qufixbench",
		Short:         "run a qufix kernel over generated fixtures and print the result",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Uint64Var(&flagSeed, "seed", 1, "RNG seed for fixture generation")
	root.PersistentFlags().IntVar(&flagSize, "size", 4, "square side / vector length of the fixtures")
	root.PersistentFlags().IntVar(&flagIntBits, "int-bits", 8, "integer bits of the element format")
	root.PersistentFlags().IntVar(&flagFracBits, "frac-bits", 8, "fractional bits of the element format")
	root.PersistentFlags().BoolVar(&flagFullPrec, "full-prec", false, "request FullPrec on every intermediate")

	root.AddCommand(
		&cobra.Command{Use: "gemul", Short: "C = A·B matrix product", RunE: runGemul},
		&cobra.Command{Use: "gemv", Short: "y = A·x matrix-vector product", RunE: runGemv},
		&cobra.Command{Use: "potrf", Short: "in-place Cholesky factorization", RunE: runPotrf},
		&cobra.Command{Use: "reduce", Short: "tree-reduce a vector to a scalar", RunE: runReduce},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qufixbench:", err)
		os.Exit(1)
	}
}

func elemFormat() (fixed.Format, error) {
	return fixed.NewFormat(flagIntBits, flagFracBits, true, fixed.RndTCPL, fixed.OvfSatTCPL)
}

func kernelBundle() fixed.Bundle {
	if flagFullPrec {
		return fixed.NewBundle(fixed.FullPrec())
	}
	return fixed.NewBundle()
}

// randomTensor fills a fresh tensor with uniform draws in [-1, 1).
func randomTensor(fl *fixed.Filler, shape []int, f fixed.Format) (*tensor.Tensor, error) {
	t, err := tensor.New(shape, f)
	if err != nil {
		return nil, err
	}
	t.Fill(func(int) fixed.Value { return fl.Uniform(-1, 1, f) })
	return t, nil
}

func printMatrix(name string, t *tensor.Tensor) error {
	shape := t.Shape()
	fmt.Printf("%s (%v):\n", name, shape)
	if len(shape) == 1 {
		for i := 0; i < shape[0]; i++ {
			v, err := t.At(i)
			if err != nil {
				return err
			}
			fmt.Printf("  % .6f\n", v.Real())
		}
		return nil
	}
	for i := 0; i < shape[0]; i++ {
		fmt.Print(" ")
		for j := 0; j < shape[1]; j++ {
			v, err := t.At(i, j)
			if err != nil {
				return err
			}
			fmt.Printf(" % .6f", v.Real())
		}
		fmt.Println()
	}
	return nil
}

func runGemul(cmd *cobra.Command, args []string) error {
	f, err := elemFormat()
	if err != nil {
		return err
	}
	fl := fixed.NewFiller(flagSeed)
	n := flagSize

	A, err := randomTensor(fl, []int{n, n}, f)
	if err != nil {
		return err
	}
	B, err := randomTensor(fl, []int{n, n}, f)
	if err != nil {
		return err
	}
	C, err := tensor.New([]int{n, n}, f)
	if err != nil {
		return err
	}
	b := kernelBundle()
	if err := linalg.Qgemul(C, A, B, linalg.QgemulMulArgs(b), linalg.QgemulAddArgs(b)); err != nil {
		return err
	}
	if err := printMatrix("A", A); err != nil {
		return err
	}
	if err := printMatrix("B", B); err != nil {
		return err
	}
	return printMatrix("C = A·B", C)
}

func runGemv(cmd *cobra.Command, args []string) error {
	f, err := elemFormat()
	if err != nil {
		return err
	}
	fl := fixed.NewFiller(flagSeed)
	n := flagSize

	A, err := randomTensor(fl, []int{n, n}, f)
	if err != nil {
		return err
	}
	x, err := randomTensor(fl, []int{n}, f)
	if err != nil {
		return err
	}
	y, err := tensor.New([]int{n}, f)
	if err != nil {
		return err
	}
	b := kernelBundle()
	if err := linalg.Qgemv(y, A, x, linalg.QgemvMulArgs(b), linalg.QgemvAddArgs(b)); err != nil {
		return err
	}
	if err := printMatrix("A", A); err != nil {
		return err
	}
	if err := printMatrix("x", x); err != nil {
		return err
	}
	return printMatrix("y = A·x", y)
}

// runPotrf factors a generated SPD matrix M = B·Bᵀ + n·I and prints the
// factor, whose diagonal holds reciprocal square roots per the Qpotrf
// storage convention.
func runPotrf(cmd *cobra.Command, args []string) error {
	f, err := elemFormat()
	if err != nil {
		return err
	}
	fl := fixed.NewFiller(flagSeed)
	n := flagSize

	B, err := randomTensor(fl, []int{n, n}, f)
	if err != nil {
		return err
	}
	M, err := tensor.New([]int{n, n}, f)
	if err != nil {
		return err
	}
	if err := linalg.Qgemul(M, B, B, linalg.QgemulTransB()); err != nil {
		return err
	}
	shift := fixed.FromReal(float64(n), f)
	for i := 0; i < n; i++ {
		mii, err := M.At(i, i)
		if err != nil {
			return err
		}
		if err := M.Set(fixed.Add(mii, shift), i, i); err != nil {
			return err
		}
	}

	if err := printMatrix("M (SPD input)", M); err != nil {
		return err
	}
	if err := linalg.Qpotrf(M); err != nil {
		return err
	}
	if err := printMatrix("L (rsqrt diagonal storage)", M); err != nil {
		return err
	}
	std, err := linalg.StandardCholeskyFactor(M)
	if err != nil {
		return err
	}
	return printMatrix("L (standard storage)", std)
}

func runReduce(cmd *cobra.Command, args []string) error {
	f, err := elemFormat()
	if err != nil {
		return err
	}
	fl := fixed.NewFiller(flagSeed)

	v, err := randomTensor(fl, []int{flagSize}, f)
	if err != nil {
		return err
	}
	sum, err := tensor.Qreduce(v, fixed.Add, []fixed.Bundle{kernelBundle()})
	if err != nil {
		return err
	}
	if err := printMatrix("v", v); err != nil {
		return err
	}
	fmt.Printf("sum = % .6f (format %d.%d)\n", sum.Real(), sum.Format.IntBits, sum.Format.FracBits)
	return nil
}
