/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/levelgen/InputParameters"
	"github.com/notargets/levelgen/model_problems/Poisson3D"
	"github.com/notargets/levelgen/multigrid"
	"github.com/notargets/levelgen/types"
	"github.com/notargets/levelgen/utils"
)

const (
	// MaxVerifyUnknowns bounds the levels recomputed with dense products under --verify
	MaxVerifyUnknowns = 2000
	// VerifyTolerance is the largest accepted difference relative to the dense operator norm
	VerifyTolerance = 1.e-12
)

type ModelMG struct {
	ICFile  string
	Verify  bool
	Perf    bool
	Profile string
}

type BuilderType uint8

const (
	B_Sparse BuilderType = iota
	B_Structured
)

var (
	BuilderNames = map[string]BuilderType{
		"sparse":     B_Sparse,
		"structured": B_Structured,
	}
	BuilderPrintNames = []string{"Coordinate list (sparse)", "Activity mask (structured)"}
)

func NewBuilderType(label string) (bt BuilderType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(label)
	if bt, ok = BuilderNames[label]; !ok {
		err = fmt.Errorf("unable to use builder named \"%s\", must be one of %v", label, BuilderNames)
	}
	return
}

func (bt BuilderType) Print() string {
	return BuilderPrintNames[bt]
}

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the multigrid hierarchy of a model pressure Poisson problem",
	Long: `
Generates a 7 point pressure Poisson operator on a box or sphere inside a 3D lattice,
coarsens it until the coarsest level is small enough and prints the level table,

levelgen build --ni 64 --nj 64 --nk 64 --domain Sphere --builder Sparse`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mmg := &ModelMG{}
		mmg.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		mmg.Verify, _ = cmd.Flags().GetBool("verify")
		mmg.Perf, _ = cmd.Flags().GetBool("perf")
		mmg.Profile, _ = cmd.Flags().GetString("profile")
		ip, err := processInput(mmg)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		switch strings.ToLower(mmg.Profile) {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		}
		if err = RunBuild(mmg, ip, os.Stdout); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(BuildCmd)
	ip := InputParameters.NewInputParametersMG()
	BuildCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Ni, Nj, Nk\n\t- Domain, Builder")
	BuildCmd.Flags().Int("ni", ip.Ni, "lattice cells in i")
	BuildCmd.Flags().Int("nj", ip.Nj, "lattice cells in j")
	BuildCmd.Flags().Int("nk", ip.Nk, "lattice cells in k")
	BuildCmd.Flags().StringP("domain", "D", ip.Domain, "active region of the lattice: Box or Sphere")
	BuildCmd.Flags().StringP("builder", "B", ip.Builder, "level builder: Sparse (coordinate list) or Structured (activity mask)")
	BuildCmd.Flags().IntP("coarsest", "c", ip.CoarsestUnknowns, "stop coarsening at or below this many unknowns")
	BuildCmd.Flags().IntP("procs", "p", ip.ParallelDegree, "number of go routines for per cell work, 0 uses all CPUs")
	BuildCmd.Flags().BoolP("verbose", "v", false, "print progress of each level")
	BuildCmd.Flags().Bool("verify", false, "recompute small coarse operators with dense products")
	BuildCmd.Flags().Bool("perf", false, "report CPU instructions used by the build (linux)")
	BuildCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	for key, flag := range map[string]string{
		"ni": "ni", "nj": "nj", "nk": "nk", "domain": "domain", "builder": "builder",
		"coarsest": "coarsest", "procs": "procs", "verbose": "verbose",
	} {
		if err := viper.BindPFlag(key, BuildCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

/*
processInput layers the parameters: defaults, then the YAML input file, then values set
in the viper config file, environment or command line.
*/
func processInput(mmg *ModelMG) (ip *InputParameters.InputParametersMG, err error) {
	ip = InputParameters.NewInputParametersMG()
	if len(mmg.ICFile) != 0 {
		var (
			data []byte
			file string
		)
		if file, err = homedir.Expand(mmg.ICFile); err != nil {
			return
		}
		if data, err = os.ReadFile(file); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return
		}
	}
	if viper.IsSet("ni") {
		ip.Ni = viper.GetInt("ni")
	}
	if viper.IsSet("nj") {
		ip.Nj = viper.GetInt("nj")
	}
	if viper.IsSet("nk") {
		ip.Nk = viper.GetInt("nk")
	}
	if viper.IsSet("domain") {
		ip.Domain = viper.GetString("domain")
	}
	if viper.IsSet("builder") {
		ip.Builder = viper.GetString("builder")
	}
	if viper.IsSet("coarsest") {
		ip.CoarsestUnknowns = viper.GetInt("coarsest")
	}
	if viper.IsSet("procs") {
		ip.ParallelDegree = viper.GetInt("procs")
	}
	if viper.IsSet("verbose") {
		ip.Verbose = viper.GetBool("verbose")
	}
	err = ip.Validate()
	return
}

func RunBuild(mmg *ModelMG, ip *InputParameters.InputParametersMG, w io.Writer) (err error) {
	var (
		dt    Poisson3D.DomainType
		bt    BuilderType
		p     *Poisson3D.Problem
		h     *multigrid.Hierarchy
		d     = types.NewDims(ip.Ni, ip.Nj, ip.Nk)
		count uint64
	)
	if dt, err = Poisson3D.NewDomainType(ip.Domain); err != nil {
		return
	}
	if bt, err = NewBuilderType(ip.Builder); err != nil {
		return
	}
	if ip.Verbose {
		ip.Print()
	}
	if p, err = Poisson3D.NewProblem(dt, d); err != nil {
		return
	}
	lg := multigrid.NewLevelGen(ip.ParallelDegree, ip.Verbose)
	lg.CoarsestUnknowns = ip.CoarsestUnknowns
	build := func() (err error) {
		switch bt {
		case B_Structured:
			h, err = lg.BuildStructuredHierarchy(p.A, p.Mask, d)
		default:
			h, err = lg.BuildHierarchy(p.A, p.Coords, d)
		}
		return
	}
	start := time.Now()
	if mmg.Perf {
		var perfErr error
		if count, perfErr, err = countInstructions(build); perfErr != nil {
			fmt.Fprintf(w, "perf counters unavailable: %s\n", perfErr.Error())
		}
	} else {
		err = build()
	}
	if err != nil {
		return
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "%s on a %v lattice, %s, %d unknowns\n", dt.Print(), d, bt.Print(), p.Unknowns())
	fmt.Fprintf(w, "%3s %12s %10s %12s %12s %12s\n", "L", "Lattice", "Unknowns", "nnz(A)", "nnz(R)", "nnz(P)")
	stats, complexity := h.Stats()
	for _, st := range stats {
		fmt.Fprintln(w, st.String())
	}
	fmt.Fprintf(w, "Levels = %d, Operator Complexity = %8.5f, Build Time = %v\n",
		h.TotalLevels, complexity, elapsed)
	if count != 0 {
		fmt.Fprintf(w, "CPU Instructions = %d\n", count)
	}
	if mmg.Verify {
		err = checkHierarchy(h, w)
	}
	return
}

func checkHierarchy(h *multigrid.Hierarchy, w io.Writer) (err error) {
	if maxDiff := VerifyHierarchy(h, w); maxDiff > VerifyTolerance {
		err = fmt.Errorf("coarse operators differ from 0.5*R*A*P by %g relative, tolerance %g", maxDiff, VerifyTolerance)
	}
	return
}

/*
VerifyHierarchy compares each small coarse operator with a dense 0.5*R*A*P and returns
the largest difference relative to the infinity norm of the dense product.
*/
func VerifyHierarchy(h *multigrid.Hierarchy, w io.Writer) (maxDiff float64) {
	for l := 0; l < h.TotalLevels-1; l++ {
		if h.Unknowns(l) > MaxVerifyUnknowns {
			fmt.Fprintf(w, "Level %d: skipped, %d unknowns\n", l+1, h.Unknowns(l))
			continue
		}
		expected := utils.DenseTripleProduct(h.R[l], h.A[l], h.P[l], multigrid.GalerkinScale)
		diff := utils.MaxAbsDiff(expected, utils.ToDense(h.A[l+1]))
		fmt.Fprintf(w, "Level %d: max |A - 0.5*R*A*P| = %g\n", l+1, diff)
		diff /= math.Max(1, mat.Norm(expected, math.Inf(1)))
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	return
}
