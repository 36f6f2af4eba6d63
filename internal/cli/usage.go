// Help text and usage formatting for the hicpipe CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `hicpipe - Hi-C contact matrix pipeline launcher

USAGE
  hicpipe [flags] <genome>

ARGUMENTS
  <genome>                        Registered genome name (e.g. mm10) or path to an organism config

FLAGS
  Config Sources:
    --defaults <path>             Path to the shipped defaults file
    -c, --configfile <path>       Path to a user override config file

  Input/Output:
    -i, --input-dir <path>        Directory with fastq input files
    -o, --output-dir <path>       Output directory for the run

  Scheduler:
    --local                       Run on the local machine instead of a cluster
    -j, --jobs <int>              Maximum concurrently submitted jobs (default: 5)
    --snakemake-options <opts>    Extra options passed through to the workflow engine
    --cluster-config <path>       Cluster resource config passed to the workflow engine
    --tempdir <path>              Prefix for the scratch temp directory (default: /tmp)

  Read Preprocessing:
    --downsample <int>            Downsample each sample to this many reads
    --trim                        Enable adapter trimming
    --trim-prog <prog>            Trimming program (default: cutadapt)
    --trim-options <opts>         Extra options for the trimming program
    --fastqc                      Run FastQC on the input reads

  Matrix Construction:
    --bin-size <bp>               Contact matrix bin width in base pairs (default: 10000)
    --rf-resolution               Bin by restriction fragment instead of fixed size
    --enzyme <name>               Restriction enzyme used in the assay (default: HindIII)
    --restrict-region <region>    Restrict matrix building to a genomic region
    --nbins-to-merge <int>        Number of neighbouring bins to merge (default: 0)
    --chromosomes <list>          Restrict the matrix to these chromosomes

  Sample Merging:
    --merge-samples               Merge samples according to the sample sheet
    --sample-sheet <path>         Sample sheet (TSV with name and condition columns)

  Downstream Analysis:
    --tad-params <opts>           Parameters for TAD calling
    --no-tad                      Skip TAD calling
    --no-correct                  Skip matrix correction (also skips TAD calling)
    --dist-vs-count               Plot contact counts against genomic distance
    --dist-vs-count-params <opts> Parameters for the distance-vs-counts plot

  Runtime:
    -v, --verbose                 Print the resolved configuration and debug output
    -n, --dry-run                 Compose the engine invocation without running it

  Help & Version:
    -h, --help                    Show this help
    --version                     Show version information

EXAMPLES
  # Cluster run with defaults
  hicpipe -i /data/fastq -o /runs/hic1 mm10

  # Local run at 5 kb resolution with a user override file
  hicpipe --local -j 4 --bin-size 5000 -c myconfig.yaml -i fastq -o out mm10

  # Restriction-fragment resolution with DpnII, no TAD calling
  hicpipe --rf-resolution --enzyme DpnII --no-tad -i fastq -o out hg38
`

// SetCustomHelp installs the hicpipe help template on the root command.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
