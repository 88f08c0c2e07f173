package services

import (
	"fmt"
	"io"
	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"path/filepath"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SftpService pulls the partner's loan-product CSV from the shared drop
// directory.
type SftpService struct {
}

func NewSftpService() *SftpService {
	return &SftpService{}
}

func (s *SftpService) sftpConnect() (*sftp.Client, error) {

	sshConfig := &ssh.ClientConfig{
		User: configs.SFTP_USER,
		Auth: []ssh.AuthMethod{
			ssh.Password(configs.SFTP_PASSWORD),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	conn, err := ssh.Dial("tcp", fmt.Sprintf("%s:%s", configs.SFTP_HOST, configs.SFTP_PORT), sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create SFTP client: %w", err)
	}

	return client, nil
}

// PullProductCSV returns the first CSV in the drop directory, or ("", nil,
// nil) when none is waiting.
func (s *SftpService) PullProductCSV() (string, []byte, error) {
	client, err := s.sftpConnect()
	if err != nil {
		return "", nil, err
	}
	defer client.Close()

	remoteDir := configs.SFTP_IMPORT_PATH
	files, err := client.ReadDir(remoteDir)
	if err != nil {
		return "", nil, err
	}

	var remoteFilePath string
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".csv" {
			remoteFilePath = filepath.Join(remoteDir, file.Name())
			break
		}
	}

	if remoteFilePath == "" {
		return "", nil, nil
	}

	remoteFile, err := client.Open(remoteFilePath)
	if err != nil {
		return "", nil, err
	}
	defer remoteFile.Close()

	data, err := io.ReadAll(remoteFile)
	if err != nil {
		return "", nil, err
	}

	logger.Info("Pulled product CSV %s (%d bytes)", remoteFilePath, len(data))

	return remoteFilePath, data, nil
}

// MoveToProcessed archives a consumed CSV so the next import does not replay it.
func (s *SftpService) MoveToProcessed(srcPath string) error {
	client, err := s.sftpConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	destDir := filepath.Join(filepath.Dir(srcPath), "processed")
	if _, err := client.Stat(destDir); err != nil {
		if err := client.MkdirAll(destDir); err != nil {
			return fmt.Errorf("failed to create directory: %v", err)
		}
	}

	destPath := filepath.Join(destDir, filepath.Base(srcPath))
	return client.Rename(srcPath, destPath)
}
