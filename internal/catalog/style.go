package catalog

// styles maps style tags to instruction paragraphs. Styles are combinable:
// the copy compiler joins the selected entries into a single section.
var styles = map[string]string{
	"storytelling": "Aplique o estilo STORYTELLING. Construa a mensagem ao redor de uma narrativa com personagem, conflito e desfecho — preferencialmente uma história verdadeira do cliente ou da marca. O leitor deve se projetar no protagonista. Use detalhes concretos (nomes, lugares, números) em vez de generalidades, e só conecte a história à oferta depois que ela tiver carga emocional própria.",

	"polemico": "Aplique o estilo POLÊMICO/DISRUPTIVO. Desafie uma crença estabelecida do mercado logo na abertura e sustente a posição com argumento e evidência, não só provocação. O objetivo é dividir: quem concorda vira aliado fervoroso. Ataque ideias e práticas, nunca pessoas ou grupos, e jamais fabrique controvérsia que a prova disponível não sustenta.",

	"aspiracional": "Aplique o estilo ASPIRACIONAL/LUXO. Venda o pertencimento a um padrão superior, não o produto em si. Vocabulário sóbrio e preciso, zero gritaria promocional: escassez e exclusividade comunicadas com naturalidade, como um fato. O leitor deve sentir que está sendo convidado, não convencido. Descontos e urgência barata destroem este posicionamento.",

	"urgente": "Aplique o estilo URGENTE/ALARMISTA. Comunique que a janela de ação é agora e que esperar tem custo real e crescente. Use prazos, quantidades e consequências específicas — urgência vaga ('não perca!') é ruído. Toda escassez declarada deve ser verdadeira e verificável; urgência fabricada queima a confiança da lista de forma permanente.",

	"dados": "Aplique o estilo ORIENTADO A DADOS. Toda afirmação central deve vir acompanhada de número, fonte ou demonstração: percentuais, casos medidos, comparativos antes/depois. Prefira um dado forte e bem explicado a dez soltos. Traduza cada estatística em significado humano — o número abre a porta, a interpretação fecha a venda.",

	"conversacional": "Aplique o estilo CONVERSACIONAL. Escreva como quem fala com um amigo: primeira e segunda pessoa, frases curtas, perguntas retóricas, contrações naturais do português falado. Leia em voz alta — qualquer trecho que soe como texto de empresa deve ser reescrito. Proximidade não é desleixo: a estrutura persuasiva continua por baixo da leveza.",

	"mistico": "Aplique o estilo MÍSTICO/ESPIRITUAL. Use vocabulário de jornada, propósito, energia e transformação interior, alinhado ao universo simbólico desse público. Acolhimento em vez de pressão: o convite é para um caminho, não para uma transação. Mantenha respeito genuíno pelas crenças envolvidas — ironia ou apropriação superficial são perceptíveis e fatais aqui.",
}
