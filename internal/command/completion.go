// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/meta"
)

const bashCompletionScript = `# bash completion for tram
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tram()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "new generate init workspace config watch examples completion man --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--log-level --format --no-color --config"

    case "$cmd" in
        new)
            local opts="$common --type --description --author --skip-prompts"
            ;;
        generate|gen)
            local opts="$common --type --description --target-dir --write"
            ;;
        init)
            local opts="$common --author --verbose"
            ;;
        workspace|ws)
            local opts="$common --detailed"
            ;;
        config)
            local opts="$common"
            ;;
        examples)
            local opts="basic-command async-operations config-usage progress-indicators interactive-prompts file-operations"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        watch)
            local opts="$common --interval"
            ;;
        man)
            local opts="$common --output-dir --section"
            ;;
        completion)
            local opts="bash zsh fish"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--format" ]]; then
        COMPREPLY=( $(compgen -W "json yaml table" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--log-level" ]]; then
        COMPREPLY=( $(compgen -W "debug info warn error" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--type" && "$cmd" == "new" ]]; then
        COMPREPLY=( $(compgen -W "rust nodejs python go java generic" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--type" ]]; then
        COMPREPLY=( $(compgen -W "command config-section error-type session-extension" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _tram tram
`

const zshCompletionScript = `#compdef tram

_tram() {
  local -a cmds
  cmds=(
    'new:create a new project'
    'generate:generate boilerplate code'
    'init:initialize a minimal project'
    'workspace:show workspace information'
    'config:show the resolved configuration'
    'watch:watch configuration files'
    'examples:run examples demonstrating CLI patterns'
    'completion:generate shell completion script'
    'man:generate man pages'
  )

  local -a common
  common=(
  '--log-level[log level]:level:(debug info warn error)'
  '--format[output format]:format:(json yaml table)'
  '--no-color[disable colored output]'
  '--config[config file path]:file:_files'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tram commands' cmds
    return
  fi

  case $words[2] in
    new)
      _arguments -C \
        $common \
        '--type[project type]:type:(rust nodejs python go java generic)' \
        '--description[project description]:text' \
        '--author[project author]:name' \
        '--skip-prompts[skip interactive prompts]' \
        '1:name'
      ;;
    generate|gen)
      _arguments -C \
        $common \
        '--type[template type]:type:(command config-section error-type session-extension)' \
        '--description[generated doc comment]:text' \
        '--target-dir[destination directory]:dir:_directories' \
        '--write[write the generated file]' \
        '1:name'
      ;;
    init)
      _arguments -C \
        $common \
        '--author[project author]:name' \
        '--verbose[enable verbose output]' \
        '1:name'
      ;;
    workspace|ws)
      _arguments -C $common '--detailed[include extra details]'
      ;;
    watch)
      _arguments -C $common '--interval[status log interval]:duration'
      ;;
    man)
      _arguments -C \
        $common \
        '--output-dir[directory to write pages to]:dir:_directories' \
        '--section[man section]:section'
      ;;
    examples)
      _arguments '1: :((basic-command async-operations config-usage progress-indicators interactive-prompts file-operations))'
      ;;
    completion)
      _arguments '1: :((bash zsh fish))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tram tram
`

const fishCompletionScript = `# fish completion for tram
complete -c tram -f

complete -c tram -l log-level -d "log level" -xa "debug info warn error"
complete -c tram -l format -d "output format" -xa "json yaml table"
complete -c tram -l no-color -d "disable colored output"
complete -c tram -l config -d "config file path" -r

complete -c tram -n "__fish_use_subcommand" -a new -d "create a new project"
complete -c tram -n "__fish_use_subcommand" -a generate -d "generate boilerplate code"
complete -c tram -n "__fish_use_subcommand" -a init -d "initialize a minimal project"
complete -c tram -n "__fish_use_subcommand" -a workspace -d "show workspace information"
complete -c tram -n "__fish_use_subcommand" -a config -d "show the resolved configuration"
complete -c tram -n "__fish_use_subcommand" -a watch -d "watch configuration files"
complete -c tram -n "__fish_use_subcommand" -a examples -d "run examples demonstrating CLI patterns"
complete -c tram -n "__fish_use_subcommand" -a completion -d "generate shell completion script"
complete -c tram -n "__fish_use_subcommand" -a man -d "generate man pages"

complete -c tram -n "__fish_seen_subcommand_from new" -l type -d "project type" -xa "rust nodejs python go java generic"
complete -c tram -n "__fish_seen_subcommand_from new" -l description -d "project description" -x
complete -c tram -n "__fish_seen_subcommand_from new" -l author -d "project author" -x
complete -c tram -n "__fish_seen_subcommand_from new" -l skip-prompts -d "skip interactive prompts"

complete -c tram -n "__fish_seen_subcommand_from generate gen" -l type -d "template type" -xa "command config-section error-type session-extension"
complete -c tram -n "__fish_seen_subcommand_from generate gen" -l description -d "generated doc comment" -x
complete -c tram -n "__fish_seen_subcommand_from generate gen" -l target-dir -d "destination directory" -ra "(__fish_complete_directories)"
complete -c tram -n "__fish_seen_subcommand_from generate gen" -l write -d "write the generated file"

complete -c tram -n "__fish_seen_subcommand_from init" -l author -d "project author" -x
complete -c tram -n "__fish_seen_subcommand_from init" -l verbose -d "enable verbose output"

complete -c tram -n "__fish_seen_subcommand_from workspace ws" -l detailed -d "include extra details"

complete -c tram -n "__fish_seen_subcommand_from watch" -l check -d "periodically log the active configuration"
complete -c tram -n "__fish_seen_subcommand_from watch" -l interval -d "interval between checks" -x

complete -c tram -n "__fish_seen_subcommand_from examples" -xa "basic-command async-operations config-usage progress-indicators interactive-prompts file-operations"

complete -c tram -n "__fish_seen_subcommand_from completion" -xa "bash zsh fish"

complete -c tram -n "__fish_seen_subcommand_from man" -l output-dir -d "directory to write pages to" -ra "(__fish_complete_directories)"
complete -c tram -n "__fish_seen_subcommand_from man" -l section -d "man section" -x
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	case "fish":
		fmt.Fprint(os.Stdout, fishCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		case strings.HasSuffix(sh, "fish"):
			fmt.Fprint(os.Stdout, fishCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: tram completion [bash|zsh|fish]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tram completion [bash|zsh|fish]",
		Action:    completionCommandAction,
	}
}
