/*
Package spindry generates low-energy rigid-body arrangements of a
host molecule and one or more guests by Metropolis Monte Carlo
sampling of rigid translations and rotations, scored by a pairwise
nonbonded potential.

The upstream construction of the bonded topology is out of scope: the
package only consumes atoms, bonds, and a position matrix. A
SupraMolecule decomposes that input into disconnected rigid
components along the bond graph; a Spinner then moves one component
at a time and accepts or rejects each move by the Metropolis
criterion, yielding a sequence of conformers:

	host, _ := spindry.MoleculeFromXYZ("host.xyz")
	guest, _ := spindry.MoleculeFromXYZ("guest.xyz")
	sm := spindry.InitFromComponents(
		[]*spindry.Molecule{host, guest}, -1, math.NaN(),
	)
	spinner := spindry.NewSpinner(0.5, 5, 50)
	final := spinner.GetFinalConformer(sm)

The potential is a designed repulsive/attractive surrogate, not an
empirical forcefield, and the search is a bounded-attempt stochastic
walk, not a global optimization.
*/
package spindry
