package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinburke/ssh_config"
	"github.com/lukehall/sshcopy/internal/errors"
	"github.com/lukehall/sshcopy/internal/logger"
)

// defaultCandidates are the conventional public key filenames probed in
// ~/.ssh during auto-discovery, most preferred first.
var defaultCandidates = []string{
	"id_rsa.pub",
	"id_ed25519.pub",
	"id_ecdsa.pub",
	"id_dsa.pub",
	"identity.pub",
}

// strategy is one auto-discovery source. It reports found=false to let the
// next source try; any error is terminal.
type strategy func() (id *Identity, found bool, err error)

// Resolver locates public key material, trying sources in a fixed priority
// order. The zero value is not usable; construct with NewResolver.
type Resolver struct {
	log           logger.Logger
	agent         Agent
	sshConfigPath string
	host          string
}

// NewResolver creates a Resolver that consults the real filesystem and the
// system key agent.
func NewResolver(log logger.Logger) *Resolver {
	r := &Resolver{
		log:   log,
		agent: SystemAgent(),
	}
	if home, err := homeDir(); err == nil {
		r.sshConfigPath = filepath.Join(home, ".ssh", "config")
	}
	return r
}

// SetAgent replaces the key agent client. Tests use this to substitute a
// fake agent.
func (r *Resolver) SetAgent(a Agent) {
	r.agent = a
}

// SetDestinationHost sets the host alias used to look up an IdentityFile in
// the SSH client config. Optional; without it that lookup is skipped.
func (r *Resolver) SetDestinationHost(host string) {
	r.host = host
}

// SetSSHConfigPath overrides the SSH client config location.
func (r *Resolver) SetSSHConfigPath(path string) {
	r.sshConfigPath = path
}

// Resolve produces exactly one Identity. With an explicit path it resolves
// that path (preferring the .pub sibling of a private key). With an empty
// path it auto-discovers: SSH config IdentityFile, then the conventional
// files in ~/.ssh, then the key agent.
func (r *Resolver) Resolve(explicitPath string) (*Identity, error) {
	if explicitPath != "" {
		return r.resolveExplicit(explicitPath)
	}

	// Auto-discovery needs the home directory for the candidate probe.
	home, err := homeDir()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrHomeDir,
			"Couldn't determine your home directory",
			"Set the HOME environment variable, or pass -i with an identity file")
	}

	strategies := []strategy{
		func() (*Identity, bool, error) { return r.fromSSHConfig() },
		func() (*Identity, bool, error) { return r.fromDefaultFiles(home) },
		func() (*Identity, bool, error) { return r.fromAgent() },
	}

	for _, try := range strategies {
		id, found, err := try()
		if err != nil {
			return nil, err
		}
		if found {
			return id, nil
		}
	}

	return nil, errors.New(errors.ErrNoIdentity,
		"No identity found in default locations or the key agent",
		"Generate a key with ssh-keygen, load one into ssh-agent, or pass -i")
}

// resolveExplicit resolves a user-supplied identity path.
func (r *Resolver) resolveExplicit(path string) (*Identity, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if fileExists(expanded) {
		if strings.HasSuffix(expanded, PublicKeySuffix) {
			return r.readIdentity(expanded)
		}
		// Looks like a private key path. Prefer the .pub sibling; the
		// private key itself must never be transmitted.
		if sibling := expanded + PublicKeySuffix; fileExists(sibling) {
			r.log.Debug("using public sibling %s for %s", sibling, path)
			return r.readIdentity(sibling)
		}
		// No sibling. Use the named file as-is, which permits
		// unconventional naming.
		return r.readIdentity(expanded)
	}

	if alt := expanded + PublicKeySuffix; fileExists(alt) {
		return r.readIdentity(alt)
	}

	return nil, errors.New(errors.ErrIdentity,
		fmt.Sprintf("Identity file not found: %s", path),
		"Check the path, or omit -i to auto-discover a key")
}

// fromSSHConfig tries the IdentityFile configured for the destination host
// in the SSH client config. Absent entries fall through silently.
func (r *Resolver) fromSSHConfig() (*Identity, bool, error) {
	if r.host == "" || r.sshConfigPath == "" {
		return nil, false, nil
	}

	f, err := os.Open(r.sshConfigPath)
	if err != nil {
		return nil, false, nil
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		r.log.Debug("couldn't parse %s: %v", r.sshConfigPath, err)
		return nil, false, nil
	}

	idFile, _ := cfg.Get(r.host, "IdentityFile")
	if idFile == "" {
		return nil, false, nil
	}

	expanded, err := expandHome(idFile)
	if err != nil {
		return nil, false, err
	}

	pub := expanded
	if !strings.HasSuffix(pub, PublicKeySuffix) {
		pub += PublicKeySuffix
	}
	if !fileExists(pub) {
		r.log.Debug("ssh config names %s for %s but %s doesn't exist", idFile, r.host, pub)
		return nil, false, nil
	}

	id, err := r.readIdentity(pub)
	if err != nil {
		return nil, false, err
	}
	return id, true, nil
}

// fromDefaultFiles probes the conventional public key files in ~/.ssh.
func (r *Resolver) fromDefaultFiles(home string) (*Identity, bool, error) {
	sshDir := filepath.Join(home, ".ssh")
	for _, name := range defaultCandidates {
		candidate := filepath.Join(sshDir, name)
		if !fileExists(candidate) {
			continue
		}
		id, err := r.readIdentity(candidate)
		if err != nil {
			return nil, false, err
		}
		return id, true, nil
	}
	return nil, false, nil
}

// fromAgent asks the running key agent for its held public keys. An
// unreachable or empty agent falls through.
func (r *Resolver) fromAgent() (*Identity, bool, error) {
	if r.agent == nil {
		return nil, false, nil
	}

	lines, err := r.agent.List()
	if err != nil {
		r.log.Debug("key agent query failed: %v", err)
		return nil, false, nil
	}

	content := strings.TrimSpace(strings.Join(lines, "\n"))
	if content == "" {
		return nil, false, nil
	}

	r.log.Debug("using %d key(s) from the agent", len(lines))
	return &Identity{Source: AgentSource, Content: content}, true, nil
}

// readIdentity reads a resolved file as key content.
func (r *Resolver) readIdentity(path string) (*Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRead,
			fmt.Sprintf("Couldn't read identity file: %s", path),
			"Check the file exists and is readable")
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil, errors.New(errors.ErrEmptyIdentity,
			fmt.Sprintf("Identity file is empty: %s", path),
			"Point -i at a file containing a public key line")
	}

	id := &Identity{Source: path, Content: content}
	r.warnIfOdd(id)
	return id, nil
}

// warnIfOdd emits the advisory format warning. Never fatal: the remote
// procedure treats content as opaque text.
func (r *Resolver) warnIfOdd(id *Identity) {
	if !LooksLikePublicKey(id.Content) {
		r.log.Warn("'%s' does not look like a public key", id.Source)
	}
}

// expandHome expands a leading ~ path segment to the home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := homeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrHomeDir,
			fmt.Sprintf("Couldn't expand ~ in %s", path),
			"Set the HOME environment variable, or use an absolute path")
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

func homeDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil {
		return home, nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", fmt.Errorf("home directory not set")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
