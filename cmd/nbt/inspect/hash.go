// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nbt/cmd/nbt/cli"
	"github.com/bureau-foundation/nbt/lib/nbt"
	"github.com/bureau-foundation/nbt/lib/nbthash"
)

type hashParams struct {
	nbtInputParams
	cli.JSONOutput
	Payload bool `json:"-" flag:"payload" desc:"hash the root tag without its name"`
	Entries bool `json:"-" flag:"entries" desc:"also hash each entry of a compound root"`
}

type hashEntry struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Hash string `json:"hash"`
}

type hashResult struct {
	Input   string      `json:"input"`
	Hash    string      `json:"hash"`
	Entries []hashEntry `json:"entries,omitempty"`
}

func hashCommand(streams Streams) *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Print the content fingerprint of an NBT file",
		Description: `Print a BLAKE3 fingerprint of the decoded tree.

The fingerprint covers the canonical encoding, so it does not depend on
compression or on the order compound entries were written in: two files
holding equal trees always have the same fingerprint. The root name is
included unless --payload is given.

With --entries, each entry of a compound root is also fingerprinted,
which shows at a glance which top-level entries differ between files.

Several files may be given; each gets its own line.`,
		Usage: "nbt hash [flags] [file...]",
		Examples: []cli.Example{
			{
				Description: "Fingerprint a level file",
				Command:     "nbt hash level.dat",
			},
			{
				Description: "Compare the top-level entries of two saves",
				Command:     "diff <(nbt hash --entries a.dat) <(nbt hash --entries b.dat)",
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("hash", &params) },
		Run: func(args []string) error {
			return runHash(streams, &params, args)
		},
	}
}

func runHash(streams Streams, params *hashParams, args []string) error {
	session, err := openSession(streams, params.ConfigPath, "hash")
	if err != nil {
		return err
	}
	defer session.Close()

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	results := make([]hashResult, 0, len(inputs))
	for _, input := range inputs {
		result, err := hashInput(streams, params, session, input)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	var emitted any = results
	if len(results) == 1 {
		emitted = results[0]
	}
	if done, err := params.EmitJSON(streams.Out, emitted); done {
		return err
	}
	for _, result := range results {
		fmt.Fprintf(streams.Out, "%s  %s\n", result.Hash, result.Input)
		for _, entry := range result.Entries {
			fmt.Fprintf(streams.Out, "%s  %s %s\n", entry.Hash, entry.Kind, strconv.Quote(entry.Name))
		}
	}
	return nil
}

func hashInput(streams Streams, params *hashParams, session *session, input string) (hashResult, error) {
	raw, source, err := readInput(streams.In, []string{input}, params.HexInput)
	if err != nil {
		return hashResult{}, err
	}
	root, err := params.load(raw, session.config)
	if err != nil {
		return hashResult{}, fmt.Errorf("%s: %w", source, err)
	}

	var hash nbthash.Hash
	if params.Payload {
		hash, err = nbthash.SumPayload(root.tag)
	} else {
		hash, err = nbthash.Sum(root.name, root.tag)
	}
	if err != nil {
		return hashResult{}, fmt.Errorf("%s: %w", source, err)
	}
	result := hashResult{Input: source, Hash: hash.String()}
	session.logger.Debug("hashed input", "input", source, "hash", result.Hash)

	if !params.Entries {
		return result, nil
	}
	compound, ok := root.tag.(*nbt.Compound)
	if !ok {
		return hashResult{}, fmt.Errorf("%s: --entries needs a compound root, got %s", source, root.tag.Kind())
	}
	entries, err := nbthash.SumEntries(compound)
	if err != nil {
		return hashResult{}, fmt.Errorf("%s: %w", source, err)
	}
	for _, entry := range entries {
		result.Entries = append(result.Entries, hashEntry{
			Name: string(entry.Name),
			Kind: entry.Kind.Name(),
			Hash: entry.Hash.String(),
		})
	}
	return result, nil
}
