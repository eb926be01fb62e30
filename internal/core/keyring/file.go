package keyring

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"filippo.io/age"
	"go.uber.org/multierr"

	"github.com/hhan593/SwarmDrop/internal/core/storage"
	"github.com/hhan593/SwarmDrop/internal/core/storage/engine"
	"github.com/hhan593/SwarmDrop/internal/core/storage/kv"
)

// KeystoreOptions keystore 后端选项
type KeystoreOptions struct {
	// Path BadgerDB 目录
	Path string

	// Passphrase 设备密钥的保护口令
	// 为空时设备密钥以明文写入 0600 权限的文件。
	Passphrase string
}

// KeystoreBackend 本地加密 keystore 后端
//
// 每个值用设备 X25519 密钥（age）加密后写入 BadgerDB。
// 设备密钥保存在 <Path>.key，提供口令时该文件本身也经 age scrypt 加密。
type KeystoreBackend struct {
	eng       engine.InternalEngine
	store     *kv.Store
	identity  *age.X25519Identity
	recipient *age.X25519Recipient

	// 串行化写操作，保证 Delete 的存在性检查与删除原子
	writeMu sync.Mutex

	closeOnce sync.Once
	closeErr  error
}

// NewKeystoreBackend 打开（或创建）keystore
func NewKeystoreBackend(opts KeystoreOptions) (*KeystoreBackend, error) {
	if opts.Path == "" {
		return nil, errors.New("keyring: keystore path is empty")
	}

	identity, err := loadOrCreateDeviceKey(opts.Path+".key", opts.Passphrase)
	if err != nil {
		return nil, err
	}

	eng, err := storage.Open(opts.Path, log)
	if err != nil {
		return nil, fmt.Errorf("keyring: open keystore: %w", err)
	}

	return &KeystoreBackend{
		eng:       eng,
		store:     storage.NewKVStore(eng, storage.PrefixCredentials),
		identity:  identity,
		recipient: identity.Recipient(),
	}, nil
}

// loadOrCreateDeviceKey 读取设备密钥，不存在时生成
func loadOrCreateDeviceKey(path, passphrase string) (*age.X25519Identity, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if passphrase != "" {
			data, err = decryptWithPassphrase(data, passphrase)
			if err != nil {
				return nil, fmt.Errorf("keyring: unlock device key: %w", err)
			}
		}
		identity, err := age.ParseX25519Identity(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("keyring: parse device key: %w", err)
		}
		return identity, nil

	case errors.Is(err, os.ErrNotExist):
		identity, err := age.GenerateX25519Identity()
		if err != nil {
			return nil, fmt.Errorf("keyring: generate device key: %w", err)
		}
		data := []byte(identity.String() + "\n")
		if passphrase != "" {
			data, err = encryptWithPassphrase(data, passphrase)
			if err != nil {
				return nil, fmt.Errorf("keyring: seal device key: %w", err)
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("keyring: create keystore dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, fmt.Errorf("keyring: write device key: %w", err)
		}
		log.Info("已生成 keystore 设备密钥", "path", path)
		return identity, nil

	default:
		return nil, fmt.Errorf("keyring: read device key: %w", err)
	}
}

func encryptWithPassphrase(plaintext []byte, passphrase string) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, err
	}
	return seal(plaintext, recipient)
}

func decryptWithPassphrase(ciphertext []byte, passphrase string) ([]byte, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, err
	}
	return unseal(ciphertext, identity)
}

// seal 用 age 加密
func seal(plaintext []byte, recipients ...age.Recipient) ([]byte, error) {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipients...)
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	return buf.Bytes(), nil
}

// unseal 用 age 解密
func unseal(ciphertext []byte, identities ...age.Identity) ([]byte, error) {
	r, err := age.Decrypt(bytes.NewReader(ciphertext), identities...)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading plaintext: %w", err)
	}
	return plaintext, nil
}

// entryKey 条目在 KV 中的键，服务名与键之间以单元分隔符隔开
func entryKey(service, key string) []byte {
	return []byte(service + "\x1f" + key)
}

// Kind 返回后端类型名称
func (b *KeystoreBackend) Kind() string {
	return string(KindKeystore)
}

// Set 写入（覆盖）条目
func (b *KeystoreBackend) Set(service, key, value string) error {
	ciphertext, err := seal([]byte(value), b.recipient)
	if err != nil {
		return err
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	return b.store.Put(entryKey(service, key), ciphertext)
}

// Get 读取条目
func (b *KeystoreBackend) Get(service, key string) (string, error) {
	ciphertext, err := b.store.Get(entryKey(service, key))
	if err != nil {
		if engine.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	plaintext, err := unseal(ciphertext, b.identity)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Delete 删除条目
func (b *KeystoreBackend) Delete(service, key string) error {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	k := entryKey(service, key)
	ok, err := b.store.Has(k)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return b.store.Delete(k)
}

// Close 关闭底层存储
func (b *KeystoreBackend) Close() error {
	b.closeOnce.Do(func() {
		b.closeErr = multierr.Combine(b.store.Sync(), b.eng.Close())
	})
	return b.closeErr
}
