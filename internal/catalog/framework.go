package catalog

// frameworks maps rhetorical-framework codes to instruction paragraphs.
var frameworks = map[string]string{
	"aida": "Estruture a copy no framework AIDA. ATENÇÃO: abra com um gancho que interrompa o padrão do leitor. INTERESSE: desenvolva com fatos, história ou tensão que tornem impossível parar de ler. DESEJO: faça o leitor visualizar a transformação, empilhando benefícios e prova. AÇÃO: feche com um comando claro e específico do próximo passo. Não pule etapas nem as reordene.",

	"pas": "Estruture a copy no framework PAS. PROBLEMA: nomeie a dor do leitor com precisão cirúrgica, usando as palavras que ele mesmo usaria. AGITAÇÃO: amplifique as consequências de não resolver — o custo emocional, financeiro e social de continuar como está. SOLUÇÃO: apresente a oferta como a saída natural e imediata, conectada ponto a ponto com a dor agitada.",

	"fab": "Estruture a copy no framework FAB. Para cada ponto central, apresente a CARACTERÍSTICA (o que é), a VANTAGEM (o que faz melhor que as alternativas) e o BENEFÍCIO (o que isso muda na vida do leitor). Nunca pare na característica: todo atributo técnico deve ser traduzido até virar resultado concreto para a pessoa.",

	"4ps": "Estruture a copy no framework 4Ps. PICTURE: pinte a cena da vida do leitor com o problema resolvido. PROMISE: faça uma promessa direta e mensurável. PROOF: sustente com evidências — depoimentos, números, demonstração. PUSH: empurre para a ação com urgência legítima. Mantenha a promessa como fio condutor das quatro etapas.",

	"quest": "Estruture a copy no framework QUEST. QUALIFY: deixe claro para quem é (e para quem não é) a mensagem. UNDERSTAND: demonstre que você entende a situação do leitor por dentro. EDUCATE: ensine o mecanismo que torna a solução possível. STIMULATE: desperte o desejo com benefícios e prova. TRANSITION: converta o leitor de espectador em comprador com um próximo passo concreto.",

	"bab": "Estruture a copy no framework BAB. BEFORE: descreva a realidade atual do leitor com a dor presente, de forma que ele se reconheça. AFTER: mostre a realidade desejada, com detalhes sensoriais e emocionais do problema resolvido. BRIDGE: apresente a oferta como a ponte entre os dois mundos, explicando por que ela cruza essa distância quando outras tentativas falharam.",

	"pastor": "Estruture a copy no framework PASTOR. PROBLEMA: identifique a dor central. AMPLIFICAR: intensifique as consequências de ignorá-la. STORY: conte uma história real de transformação que o leitor possa projetar em si. TRANSFORMAÇÃO: explicite o antes e depois. OFERTA: detalhe o que exatamente está sendo vendido. RESPOSTA: peça a ação de forma direta, dizendo exatamente o que fazer agora.",
}
